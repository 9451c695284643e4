package main

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/kochabx/vapid/config"
	"github.com/kochabx/vapid/log"
	"github.com/kochabx/vapid/log/desensitize"
)

type command struct {
	config AppConfig
	logger *log.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	c := &command{}
	return &cli.App{
		Name:      "vapid",
		Usage:     "verify ES256 push tokens and encode raw P-256 keys",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (yaml, json or toml)",
				EnvVars: []string{"VAPID_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level, overrides log.level",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write logs to this file",
			},
		},
		Before: c.before,
		After:  c.after,
		// exit codes are handled by main
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			c.verifyCommand(),
			c.encodeCommand(),
			c.signCommand(),
		},
	}
}

func (c *command) before(cctx *cli.Context) error {
	c.config = AppConfig{}
	if err := config.New(&c.config, config.WithFile(cctx.String("config"))).Load(); err != nil {
		return err
	}

	if cctx.IsSet("log-level") {
		c.config.Log.Level = cctx.String("log-level")
	}
	if path := cctx.String("log-file"); path != "" {
		c.config.Log.Output = "multi"
		ext := filepath.Ext(path)
		c.config.Log.File.Filepath = filepath.Dir(path)
		c.config.Log.File.Filename = strings.TrimSuffix(filepath.Base(path), ext)
		if ext != "" {
			c.config.Log.File.FileExt = strings.TrimPrefix(ext, ".")
		}
	}

	logger, err := c.newLogger(cctx.App.ErrWriter)
	if err != nil {
		return err
	}
	c.logger = logger
	log.SetGlobalLogger(logger)
	return nil
}

func (c *command) after(*cli.Context) error {
	if c.logger != nil {
		return c.logger.Close()
	}
	return nil
}

func (c *command) newLogger(stderr io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.config.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := []log.Option{
		log.WithLevel(level),
		log.WithDesensitize(desensitize.NewHook(desensitize.BuiltinRules()...)),
		log.WithConsole(stderr),
	}
	if level <= zerolog.DebugLevel {
		opts = append(opts, log.WithCaller())
	}

	switch c.config.Log.Output {
	case "file":
		return log.NewFile(c.config.Log.File, opts...)
	case "multi":
		return log.NewMulti(c.config.Log.File, opts...)
	default:
		return log.New(opts...), nil
	}
}
