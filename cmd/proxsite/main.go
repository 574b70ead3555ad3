package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"

	"github.com/proxpl/proxsite/internal/config"
	"github.com/proxpl/proxsite/internal/docs"
	"github.com/proxpl/proxsite/internal/llm"
	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/scaffold"
	"github.com/proxpl/proxsite/internal/session"
	"github.com/proxpl/proxsite/internal/ux"
	"github.com/proxpl/proxsite/internal/web"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:        "proxsite",
		Usage:       "ProXPL documentation site and playground",
		Description: "Run 'proxsite docs' to browse the ProXPL documentation from the terminal.",
		Version:     playground.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to " + config.FileName + " (default: search upward from cwd)"},
		},
		Commands: []*cli.Command{
			initCmd(),
			serveCmd(),
			docsCmd(),
			playCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config named by --config, or the nearest one
// above the working directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.String("config"), dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newGenerator builds the configured collaborator. A missing API key is
// reported and leaves generation disabled rather than failing.
func newGenerator(cfg *config.Config) (llm.Generator, error) {
	g := cfg.Generator
	gen, err := llm.New(llm.Options{
		Provider: g.Provider,
		Model:    g.Model,
		APIKey:   g.APIKey(),
		Timeout:  g.TimeoutDuration(),
		Endpoint: g.Endpoint,
	})
	if errors.Is(err, llm.ErrNoAPIKey) {
		ux.Warn(os.Stderr, "%s is not set; AI generation is disabled", g.APIKeyEnv)
		return nil, nil
	}
	return gen, err
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (overrides config and PROXSITE_ADDR)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Disable the request log"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			addr := cfg.Addr
			if a := cmd.String("addr"); a != "" {
				addr = a
			}

			idx := docs.Default()
			if missing := idx.Integrity(); len(missing) > 0 {
				ux.Warn(os.Stderr, "%d topics have no content (run 'proxsite docs check')", len(missing))
			}

			store, err := session.NewStore(cfg.SessionDir, cfg.SessionTTLDuration())
			if err != nil {
				return err
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}

			srv, err := web.New(web.Options{
				Name:       cfg.Name,
				BaseURL:    cfg.BaseURL,
				Index:      idx,
				Sessions:   store,
				Compiler:   playground.NewCompiler(cfg.CompileDelayDuration()),
				Generator:  gen,
				SessionTTL: cfg.SessionTTLDuration(),
				Quiet:      cmd.Bool("quiet"),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, addr)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create " + config.FileName + " and .env.example in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing " + config.FileName},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(os.Stdout, dir, cmd.Bool("force"))
		},
	}
}
