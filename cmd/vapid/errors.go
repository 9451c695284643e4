package main

import "github.com/kochabx/vapid/errors"

// Command errors
var (
	// ErrTokensFile indicates that the --tokens-file input could not be read
	ErrTokensFile = errors.New(5001, "vapid: read tokens file failed")
)
