package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/proxpl/proxsite/internal/docs"
	"github.com/proxpl/proxsite/internal/nav"
	"github.com/proxpl/proxsite/internal/ux"
)

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "style", Value: "auto", Usage: "Terminal style: auto, dark, light, notty"},
			&cli.IntFlag{Name: "width", Value: 80, Usage: "Word wrap width"},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Filter topics by name, category or content",
				ArgsUsage: "<query>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					query := strings.Join(cmd.Args().Slice(), " ")
					if query == "" {
						return fmt.Errorf("query argument is required")
					}
					idx := docs.Default()
					st := nav.Apply(idx, nav.State{}, nav.Search{Query: query})
					ux.Overview(os.Stdout, *nav.Render(idx, st).Overview)
					return nil
				},
			},
			{
				Name:  "check",
				Usage: "List topics that have no content",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					idx := docs.Default()
					ux.Integrity(os.Stdout, len(idx.Flat()), idx.Integrity())
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			idx := docs.Default()
			name := strings.Join(cmd.Args().Slice(), " ")
			if name == "" {
				ux.Overview(os.Stdout, idx.Overview(""))
				return nil
			}
			if _, err := idx.Get(name); err != nil {
				return err
			}
			v := nav.Render(idx, nav.Apply(idx, nav.State{}, nav.Select{Name: name}))
			return ux.Topic(os.Stdout, v.Topic, cmd.String("style"), cmd.Int("width"))
		},
	}
}
