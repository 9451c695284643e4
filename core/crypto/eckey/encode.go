package eckey

import (
	"encoding/asn1"
	"strconv"
)

// EncodePrivateKey wraps a raw 32-byte P-256 scalar in an "EC PRIVATE KEY"
// container. The record carries the version, the scalar and the named curve.
func EncodePrivateKey(raw []byte) (*Container, error) {
	if len(raw) != PrivateKeyBytes {
		return nil, invalidLength(PrivateKeyBytes, len(raw))
	}

	der, err := asn1.Marshal(newECPrivateKey(raw))
	if err != nil {
		return nil, ErrEncodingFailed.WithCause(err)
	}

	return &Container{
		Type:  PrivateKeyLabel,
		Bytes: der,
	}, nil
}

// EncodePublicKey wraps a raw 65-byte uncompressed P-256 point in a
// "PUBLIC KEY" container. The point itself is not checked against the curve;
// ParsePublicKey does that.
func EncodePublicKey(raw []byte) (*Container, error) {
	if len(raw) != PublicKeyBytes {
		return nil, invalidLength(PublicKeyBytes, len(raw))
	}
	if raw[0] != UncompressedPointTag {
		return nil, ErrInvalidPointFormat.WithMetadata(map[string]string{
			"marker": "0x" + strconv.FormatUint(uint64(raw[0]), 16),
		})
	}

	der, err := asn1.Marshal(newSubjectPublicKeyInfo(raw))
	if err != nil {
		return nil, ErrEncodingFailed.WithCause(err)
	}

	return &Container{
		Type:  PublicKeyLabel,
		Bytes: der,
	}, nil
}

func invalidLength(want, got int) error {
	return ErrInvalidKeyLength.WithMetadata(map[string]string{
		"want": strconv.Itoa(want),
		"got":  strconv.Itoa(got),
	})
}
