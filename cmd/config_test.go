package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/balancete/kv"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balancete.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if c.Store.Backend != kv.BackendDir || c.Store.Path != ".balancete" {
		t.Errorf("store = %+v, want the dir backend in .balancete", c.Store)
	}
	if c.Server.Addr != ":8080" || c.LLM.Provider != ProviderGemini || c.LLM.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: sqlite
server:
  addr: 127.0.0.1:9090
llm:
  provider: chat
  endpoint: http://localhost:11434/v1/chat/completions
  model: llama3
log:
  level: debug
  format: json
tracing: true
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if c.Store.Path != ".balancete/balancete.db" {
		t.Errorf("sqlite default path = %q", c.Store.Path)
	}
	if c.LLM.APIKeyEnv != "BALANCETE_API_KEY" {
		t.Errorf("chat api key env = %q, want BALANCETE_API_KEY", c.LLM.APIKeyEnv)
	}
	if c.Server.Addr != "127.0.0.1:9090" || c.Log.Format != "json" || !c.Tracing {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name, content, want string
	}{
		{"backend", "store:\n  backend: redis\n", "store.backend"},
		{"provider", "llm:\n  provider: magic\n", "llm.provider"},
		{"chat without endpoint", "llm:\n  provider: chat\n", "llm.endpoint"},
		{"log format", "log:\n  format: xml\n", "log.format"},
		{"yaml", "store: [", "cannot parse"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadConfig() error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadConfig() of a missing file must fail")
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "abc")
	if got := DefaultConfig().APIKey(); got != "abc" {
		t.Errorf("APIKey() = %q, want %q", got, "abc")
	}
}
