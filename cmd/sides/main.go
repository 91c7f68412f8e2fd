package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/sides/bridge"
	"github.com/wippyai/sides/config"
	"github.com/wippyai/sides/entry"
	"github.com/wippyai/sides/runtime"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load settings from TOML `file`",
			EnvVars: []string{config.EnvFile},
		},
		&cli.StringFlag{
			Name:    "loglvl",
			Usage:   "set logging `level` to debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"SIDES_LOGLVL"},
		},
		&cli.StringFlag{
			Name:    "logfmt",
			Aliases: []string{"f"},
			Usage:   "`format` logs as text or json",
			Value:   "text",
			EnvVars: []string{"SIDES_LOGFMT"},
		},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "sides",
		Usage:     "pass capabilities across a binary boundary",
		UsageText: "sides [global options] command [command options] [arguments...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Before:    setup,
		Metadata:  map[string]interface{}{},
		Commands: []*cli.Command{
			runCommand(),
			scriptCommand(),
			headerCommand(),
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and installs the
// logger.
func setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.Path("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.IsSet("loglvl") {
		cfg.LogLevel = c.String("loglvl")
	}
	if c.IsSet("logfmt") {
		cfg.LogFormat = c.String("logfmt")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, c.App.ErrWriter)
	if err != nil {
		return err
	}
	bridge.SetLogger(log.Named("bridge"))
	runtime.SetLogger(log.Named("runtime"))
	entry.SetLogger(log.Named("entry"))

	c.App.Metadata["config"] = cfg
	return nil
}

func settings(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata["config"].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core), nil
}
