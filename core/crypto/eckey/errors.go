package eckey

import "github.com/kochabx/vapid/errors"

// Key-related errors
var (
	// ErrInvalidKeyLength indicates that raw key bytes have the wrong size for the operation
	ErrInvalidKeyLength = errors.New(1001, "eckey: invalid key length")

	// ErrInvalidPointFormat indicates that a public point is not in uncompressed form
	ErrInvalidPointFormat = errors.New(1002, "eckey: public key is not an uncompressed point")

	// ErrMalformedKeyEncoding indicates that a base64url key string could not be decoded
	ErrMalformedKeyEncoding = errors.New(1003, "eckey: malformed key encoding")

	// ErrInvalidPublicKey indicates that the public key point is not on the curve
	ErrInvalidPublicKey = errors.New(1004, "eckey: invalid public key")

	// ErrInvalidPrivateKey indicates that the private scalar is out of range
	ErrInvalidPrivateKey = errors.New(1005, "eckey: invalid private key")
)

// Container errors
var (
	// ErrInvalidPEMBlock indicates missing PEM data or an unexpected label
	ErrInvalidPEMBlock = errors.New(1010, "eckey: invalid PEM block")

	// ErrEncodingFailed indicates that DER marshalling failed
	ErrEncodingFailed = errors.New(1011, "eckey: DER encoding failed")

	// ErrKeyFile indicates a failure to read or write a container file
	ErrKeyFile = errors.New(1012, "eckey: key file i/o failed")
)
