package vapid

import (
	"github.com/kochabx/vapid/core/crypto/eckey"
	"github.com/kochabx/vapid/errors"
)

// Token errors
var (
	// ErrMalformedToken indicates a token that does not split into three
	// base64url segments or whose header or payload cannot be decoded
	ErrMalformedToken = errors.New(2001, "vapid: malformed token")

	// ErrVerificationFailed indicates a bad signature, a disallowed algorithm
	// or a rejected claim (expired, not yet valid, audience, subject)
	ErrVerificationFailed = errors.New(2002, "vapid: verification failed")
)

// Key errors, re-exported from eckey
var (
	ErrInvalidKeyLength     = eckey.ErrInvalidKeyLength
	ErrInvalidPointFormat   = eckey.ErrInvalidPointFormat
	ErrMalformedKeyEncoding = eckey.ErrMalformedKeyEncoding
	ErrInvalidPublicKey     = eckey.ErrInvalidPublicKey
	ErrInvalidPrivateKey    = eckey.ErrInvalidPrivateKey
)

// Reason returns the failure detail carried by err: the "reason" metadata
// of a token error, else the text of the cause, else the error text.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	ge := errors.FromError(err)
	if reason, ok := ge.GetMetadata()["reason"]; ok {
		return reason
	}
	if ge.GetCause() != nil {
		return ge.GetCause().Error()
	}
	return err.Error()
}
