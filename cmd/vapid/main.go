// Command vapid verifies ES256 push tokens against raw P-256 public keys and
// converts raw keys to PEM containers.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kochabx/vapid/errors"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}
