package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kochabx/vapid/core/auth/vapid"
	"github.com/kochabx/vapid/log"
)

func (c *command) signCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "issue an ES256 token with a raw private scalar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "private",
				Usage:    "base64url raw private scalar (32 bytes)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "aud",
				Usage:    "aud claim, the push service origin",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "sub",
				Usage:    "sub claim, a mailto: or https: contact",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "token lifetime",
				Value: 12 * time.Hour,
			},
		},
		Action: c.runSign,
	}
}

func (c *command) runSign(cctx *cli.Context) error {
	signer, err := vapid.NewSignerFromBase64URL(cctx.String("private"))
	if err != nil {
		return err
	}

	exp := time.Now().Add(cctx.Duration("ttl"))
	token, err := signer.Sign(vapid.Claims{
		"aud": cctx.String("aud"),
		"sub": cctx.String("sub"),
		"exp": exp.Unix(),
	})
	if err != nil {
		return err
	}

	log.Info().Str("public_key", signer.PublicKeyBase64URL()).Time("exp", exp).Msg("token signed")
	fmt.Fprintln(cctx.App.Writer, token)
	return nil
}
