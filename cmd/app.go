// Package cmd implements the CLI application to manage the dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/balancete"
	"github.com/etnz/balancete/insight"
	"github.com/etnz/balancete/kv"
	"github.com/etnz/balancete/trace"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "dashboard")
	c.Register(&importCmd{}, "dashboard")
	c.Register(&showCmd{}, "dashboard")
	c.Register(&insightsCmd{}, "dashboard")
	c.Register(&resetCmd{}, "dashboard")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file")
var storeBackend = flag.String("store-backend", "", "Storage backend: dir, sqlite or memory. Overrides the config file.")
var storePath = flag.String("store-path", "", "Storage directory (dir) or database file (sqlite). Overrides the config file.")

// app holds what commands need to run.
type app struct {
	cfg  *Config
	log  *logrus.Logger
	dash *balancete.Dashboard
	kv   kv.Backend
}

// openApp loads the configuration and opens the dashboard.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *storeBackend != "" {
		cfg.Store.Backend = *storeBackend
		if *storePath == "" {
			cfg.Store.Path = ""
		}
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := newLogger(cfg)
	if err := trace.Init(cfg.Tracing, os.Stderr); err != nil {
		log.WithError(err).Warn("failed to initialize tracing, tracing disabled")
	}

	backend, err := kv.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	store := balancete.NewStore(backend, log)

	advisor, err := newAdvisor(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Warn("insight service not available")
	}

	return &app{
		cfg:  cfg,
		log:  log,
		dash: balancete.NewDashboard(store, advisor, balancete.WithLogger(log)),
		kv:   backend,
	}, nil
}

// Close releases the storage and flushes traces.
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(ctx); err != nil {
		a.log.WithError(err).Warn("cannot flush traces")
	}
	if err := a.kv.Close(); err != nil {
		a.log.WithError(err).Warn("cannot close storage")
	}
}

// insightTimeout is the maximum duration of an insight request.
func (a *app) insightTimeout() time.Duration {
	return time.Duration(a.cfg.LLM.TimeoutSeconds) * time.Second
}

func newLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// newAdvisor returns the insight requester for the configured provider. It
// returns a nil advisor when the provider is "none".
func newAdvisor(ctx context.Context, cfg *Config, log logrus.FieldLogger) (balancete.Advisor, error) {
	var gen insight.Generator
	switch cfg.LLM.Provider {
	case ProviderNone:
		return nil, nil
	case ProviderGemini:
		g, err := insight.NewGemini(ctx, cfg.APIKey(), cfg.LLM.Model)
		if err != nil {
			// usually a missing key, every request then reports it to the user.
			log.WithError(err).Warn("gemini client not available")
			gen = insight.GeneratorFunc(func(context.Context, string) (string, error) { return "", err })
			break
		}
		gen = g
	case ProviderChat:
		gen = &insight.Chat{
			Endpoint:   cfg.LLM.Endpoint,
			APIKey:     cfg.APIKey(),
			Model:      cfg.LLM.Model,
			AnswerPath: cfg.LLM.AnswerPath,
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
	return insight.NewRequester(insight.Observed(gen, log), log), nil
}

// exitOnError prints err and returns the failure status.
func exitOnError(format string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	return subcommands.ExitFailure
}
