package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kochabx/vapid/core/auth/vapid"
	"github.com/kochabx/vapid/errors"
	"github.com/kochabx/vapid/log"
)

func (c *command) verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "verify ES256 tokens against a raw public key",
		ArgsUsage: "[token...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "base64url raw P-256 public key (65 bytes, uncompressed)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "token to verify, repeatable",
			},
			&cli.StringFlag{
				Name:  "tokens-file",
				Usage: "file with one token per line",
			},
			&cli.StringFlag{
				Name:  "audience",
				Usage: "required aud claim, overrides verifier.audience",
			},
			&cli.StringFlag{
				Name:  "subject",
				Usage: "required sub claim, overrides verifier.subject",
			},
			&cli.DurationFlag{
				Name:  "leeway",
				Usage: "clock skew tolerance, overrides verifier.leeway",
			},
			&cli.BoolFlag{
				Name:  "require-exp",
				Usage: "reject tokens without exp",
			},
		},
		Action: c.runVerify,
	}
}

func (c *command) runVerify(cctx *cli.Context) error {
	tokens, err := collectTokens(cctx)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return cli.Exit("no tokens given", 2)
	}

	cfg := c.config.Verifier
	if cctx.IsSet("audience") {
		cfg.Audience = cctx.String("audience")
	}
	if cctx.IsSet("subject") {
		cfg.Subject = cctx.String("subject")
	}
	if cctx.IsSet("leeway") {
		cfg.Leeway = cctx.Duration("leeway")
	}
	if cctx.Bool("require-exp") {
		cfg.RequireExpiration = true
	}

	verifier, err := vapid.New(vapid.WithConfig(cfg))
	if err != nil {
		log.Error().Err(err).Msg("invalid verifier config")
		return err
	}

	log.Debug().Int("tokens", len(tokens)).Int("concurrency", verifier.Config().Concurrency).Msg("verifying")

	results := verifier.VerifyAll(cctx.Context, cctx.String("key"), tokens)

	failed := 0
	for _, r := range results {
		if r.OK() {
			claims, err := json.Marshal(r.Claims)
			if err != nil {
				return err
			}
			log.Info().Int("index", r.Index).Str("token", r.Token).RawJSON("claims", claims).Msg("token verified")
			fmt.Fprintf(cctx.App.Writer, "%d\tok\t%s\n", r.Index, claims)
			continue
		}

		failed++
		kind := errorKind(r.Err)
		log.Warn().Int("index", r.Index).Str("token", r.Token).Str("kind", kind).Str("reason", vapid.Reason(r.Err)).Msg("token rejected")
		fmt.Fprintf(cctx.App.Writer, "%d\tfail\t%s: %s\n", r.Index, kind, vapid.Reason(r.Err))
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d tokens failed verification", failed, len(tokens)), 1)
	}
	return nil
}

func collectTokens(cctx *cli.Context) ([]string, error) {
	tokens := append([]string{}, cctx.StringSlice("token")...)
	tokens = append(tokens, cctx.Args().Slice()...)

	path := cctx.String("tokens-file")
	if path == "" {
		return tokens, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrTokensFile.WithCause(err).WithMetadata(map[string]string{"path": path})
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrTokensFile.WithCause(err).WithMetadata(map[string]string{"path": path})
	}
	return tokens, nil
}

// errorKind names the error kind without the package prefix
func errorKind(err error) string {
	var ge *errors.Error
	if errors.As(err, &ge) {
		_, kind, found := strings.Cut(ge.GetMessage(), ": ")
		if found {
			return kind
		}
		return ge.GetMessage()
	}
	return err.Error()
}
