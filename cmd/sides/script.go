package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/wippyai/sides/script"
)

func scriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "script",
		Usage:     "write the reference collaborator script",
		ArgsUsage: "[out.wasm]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-trace",
				Usage: "do not log the handle through sides:log",
			},
			&cli.BoolFlag{
				Name:  "no-destroy",
				Usage: "leave destruction to the entry point",
			},
			&cli.BoolFlag{
				Name:  "trap",
				Usage: "trap after using the Thing",
			},
		},
		Action: func(c *cli.Context) error {
			out := c.Args().First()
			if out == "" {
				out = script.DefaultPath
			}

			bin := script.Reference(script.Options{
				Trace:   !c.Bool("no-trace"),
				Destroy: !c.Bool("no-destroy"),
				Trap:    c.Bool("trap"),
			})
			if err := script.Write(out, bin); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "wrote %s (%d bytes)\n", out, len(bin))
			return nil
		},
	}
}
