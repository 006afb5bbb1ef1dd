package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/balancete/web"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard to a browser" }
func (*serveCmd) Usage() string {
	return `balancete serve [-addr <host:port>]

  Serve the dashboard. Open the address in a browser to import a sheet,
  browse the balance sheet and request an analysis.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Overrides the config file.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a, err := openApp(ctx)
	if err != nil {
		return exitOnError("Error", err)
	}
	defer a.Close()

	srv, err := web.NewServer(a.dash, a.log)
	if err != nil {
		return exitOnError("Error initializing the web server", err)
	}

	addr := a.cfg.Server.Addr
	if c.addr != "" {
		addr = c.addr
	}
	server := &http.Server{
		Addr:        addr,
		Handler:     srv.Router(),
		ReadTimeout: 30 * time.Second,
		// an insight request holds the response until the service answers.
		WriteTimeout: a.insightTimeout() + 10*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdown)
	}()

	a.log.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return exitOnError("Server failed", err)
	}
	return subcommands.ExitSuccess
}
