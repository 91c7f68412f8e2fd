//go:build !cgo

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/errors"
)

func runForeign(_ context.Context, cfg entry.Config, _ int32) error {
	err := errors.Unsupported(errors.PhaseBoundary, "foreign Things need a cgo build")
	var w io.Writer = os.Stderr
	if cfg.Stderr != nil {
		w = cfg.Stderr
	}
	fmt.Fprintf(w, "error %v\n", err)
	return err
}
