package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/wippyai/sides/cgen"
	"github.com/wippyai/sides/errors"
	"github.com/wippyai/sides/idl"
)

func headerCommand() *cli.Command {
	return &cli.Command{
		Name:      "header",
		Usage:     "generate C headers from an IDL file",
		ArgsUsage: "in.sides [outdir]",
		Action: func(c *cli.Context) error {
			in := c.Args().First()
			if in == "" {
				return errors.InvalidInput(errors.PhaseGenerate, "missing IDL file")
			}
			outdir := c.Args().Get(1)
			if outdir == "" {
				outdir = "."
			}

			src, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "read "+in)
			}
			f, err := idl.Parse(string(src))
			if err != nil {
				return err
			}
			files, err := cgen.Generate(f)
			if err != nil {
				return err
			}
			if err := cgen.WriteFiles(outdir, files); err != nil {
				return err
			}

			for _, file := range files {
				fmt.Fprintln(c.App.Writer, filepath.Join(outdir, file.Name))
			}
			return nil
		},
	}
}
