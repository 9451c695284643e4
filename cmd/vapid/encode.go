package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kochabx/vapid/core/crypto/eckey"
	"github.com/kochabx/vapid/log"
)

func (c *command) encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "convert raw base64url keys to PEM containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "public",
				Usage:    "base64url raw public key (65 bytes)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "private",
				Usage: "base64url raw private scalar (32 bytes)",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "write private.pem and public.pem to this directory instead of printing",
			},
		},
		Action: c.runEncode,
	}
}

func (c *command) runEncode(cctx *cli.Context) error {
	public, err := encodeKey(cctx.String("public"), eckey.EncodePublicKey)
	if err != nil {
		return err
	}

	var private *eckey.Container
	if s := cctx.String("private"); s != "" {
		if private, err = encodeKey(s, eckey.EncodePrivateKey); err != nil {
			return err
		}
	}

	if dir := cctx.String("out"); dir != "" {
		paths, err := eckey.WriteContainers(private, public, eckey.WithDirpath(dir))
		if err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("write containers")
			return err
		}
		for _, path := range paths {
			log.Info().Str("path", path).Msg("container written")
			fmt.Fprintln(cctx.App.Writer, path)
		}
		return nil
	}

	if private != nil {
		fmt.Fprint(cctx.App.Writer, private.String())
	}
	fmt.Fprint(cctx.App.Writer, public.String())
	return nil
}

func encodeKey(s string, encode func([]byte) (*eckey.Container, error)) (*eckey.Container, error) {
	raw, err := eckey.DecodeBase64URL(s)
	if err != nil {
		return nil, err
	}
	return encode(raw)
}
