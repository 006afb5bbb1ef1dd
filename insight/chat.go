package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultAnswerPath locates the answer in an OpenAI-compatible chat completion.
const DefaultAnswerPath = "$.choices[0].message.content"

// Chat generates text with an OpenAI-compatible chat completion endpoint.
type Chat struct {
	Endpoint string
	APIKey   string
	Model    string
	// AnswerPath is the JSONPath of the answer text in the response body.
	AnswerPath string
	Client     *http.Client
}

// Generate posts prompt as a single user message.
func (c *Chat) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("chat API key missing")
	}
	body := map[string]any{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "system", "content": strings.TrimSpace(systemInstruction)},
			{"role": "user", "content": prompt},
		},
	}
	bb, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat http %d: %s", resp.StatusCode, string(respBytes))
	}

	var jobj any
	if err := json.Unmarshal(respBytes, &jobj); err != nil {
		return "", fmt.Errorf("chat answer is not JSON: %w", err)
	}
	return answerAt(c.answerPath(), jobj)
}

func (c *Chat) answerPath() string {
	if c.AnswerPath == "" {
		return DefaultAnswerPath
	}
	return c.AnswerPath
}

// answerAt extracts the string at path in jobj.
func answerAt(path string, jobj any) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("no answer at %q: %w", path, err)
	}
	// jsonpath may return a list of one answer, or the answer itself.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	text, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("answer at %q is not a string: %v", path, jval)
	}
	return text, nil
}
