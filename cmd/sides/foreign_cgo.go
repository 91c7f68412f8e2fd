//go:build cgo

package main

import (
	"context"
	"fmt"

	"github.com/wippyai/sides/cabi"
	"github.com/wippyai/sides/entry"
)

func runForeign(ctx context.Context, cfg entry.Config, number int32) error {
	destroyed, err := cabi.RunForeign(ctx, cfg, number)
	fmt.Fprintf(cfg.Stdout, "C destroy ran %d time(s)\n", destroyed)
	return err
}
