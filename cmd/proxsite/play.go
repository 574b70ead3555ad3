package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/proxpl/proxsite/internal/llm"
	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/ux"
)

// readSource reads a program from a file, or stdin for "-".
func readSource(arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("file argument is required (use - for stdin)")
	}
	var data []byte
	var err error
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func playCmd() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Use the playground from the terminal",
		Commands: []*cli.Command{
			{
				Name:  "presets",
				Usage: "List example programs",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ux.Presets(os.Stdout, playground.Presets())
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "Simulate compiling and running a program",
				ArgsUsage: "<file|->",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "preset", Usage: "Run a preset instead of a file"},
					&cli.BoolFlag{Name: "no-delay", Usage: "Skip the simulated compile time"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var code string
					if key := cmd.String("preset"); key != "" {
						p, ok := playground.LookupPreset(key)
						if !ok {
							return fmt.Errorf("unknown preset %q (run 'proxsite play presets')", key)
						}
						code = p.Code
					} else {
						src, err := readSource(cmd.Args().First())
						if err != nil {
							return err
						}
						code = src
					}

					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					delay := cfg.CompileDelayDuration()
					if cmd.Bool("no-delay") {
						delay = -1
					}

					compiler := playground.NewCompiler(delay)
					compiler.Progress = func(r playground.Result) { ux.RunResult(os.Stdout, r) }
					res, err := compiler.Run(ctx, code)
					if err != nil {
						return err
					}
					ux.RunResult(os.Stdout, res)
					if res.Status == playground.StatusError {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:      "generate",
				Usage:     "Ask the AI Architect to write a program",
				ArgsUsage: "<request...>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return generate(ctx, cmd, playground.ModeCode, strings.Join(cmd.Args().Slice(), " "))
				},
			},
			{
				Name:      "explain",
				Usage:     "Ask the AI Architect to explain a program",
				ArgsUsage: "<file|->",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					src, err := readSource(cmd.Args().First())
					if err != nil {
						return err
					}
					return generate(ctx, cmd, playground.ModeExplain, src)
				},
			},
		},
	}
}

func generate(ctx context.Context, cmd *cli.Command, mode playground.Mode, input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("nothing to send: input is empty")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	out, err := playground.Generate(ctx, gen, mode, input)
	if err != nil {
		return err
	}
	failed := llm.Failed(out)
	ux.Generated(os.Stdout, out, failed)
	if failed {
		return cli.Exit("", 1)
	}
	return nil
}
