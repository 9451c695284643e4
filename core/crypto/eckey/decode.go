package eckey

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/base64"
	"strings"
)

// DecodeBase64URL decodes a key string in the RFC 4648 URL and filename safe
// alphabet. Padding is optional but, when present, must be exactly what the
// length implies. Line breaks and non-zero trailing bits are rejected.
func DecodeBase64URL(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrMalformedKeyEncoding.WithMetadata(map[string]string{"reason": "line break in key"})
	}

	encoding := base64.RawURLEncoding.Strict()
	if strings.HasSuffix(s, "=") {
		encoding = base64.URLEncoding.Strict()
	}

	raw, err := encoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedKeyEncoding.WithCause(err)
	}
	return raw, nil
}

// EncodeBase64URL encodes raw key bytes without padding.
func EncodeBase64URL(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// ParsePublicKey parses a "PUBLIC KEY" container into a P-256 ECDSA key.
func ParsePublicKey(c *Container) (*ecdsa.PublicKey, error) {
	if c == nil || c.Type != PublicKeyLabel {
		return nil, ErrInvalidPEMBlock
	}

	key, err := x509.ParsePKIXPublicKey(c.Bytes)
	if err != nil {
		return nil, ErrInvalidPublicKey.WithCause(err)
	}

	pub, ok := key.(*ecdsa.PublicKey)
	if !ok || pub.Curve != elliptic.P256() {
		return nil, ErrInvalidPublicKey
	}
	return pub, nil
}

// ParsePrivateKey parses an "EC PRIVATE KEY" container. The public half is
// derived from the scalar.
func ParsePrivateKey(c *Container) (*ecdsa.PrivateKey, error) {
	if c == nil || c.Type != PrivateKeyLabel {
		return nil, ErrInvalidPEMBlock
	}

	priv, err := x509.ParseECPrivateKey(c.Bytes)
	if err != nil {
		return nil, ErrInvalidPrivateKey.WithCause(err)
	}
	if priv.Curve != elliptic.P256() {
		return nil, ErrInvalidPrivateKey
	}
	return priv, nil
}

// RawPublicKey returns the 65-byte uncompressed encoding of pub.
func RawPublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, ErrInvalidPublicKey
	}
	ecdhKey, err := pub.ECDH()
	if err != nil || ecdhKey.Curve() != ecdh.P256() {
		return nil, ErrInvalidPublicKey.WithCause(err)
	}
	return ecdhKey.Bytes(), nil
}

// RawPrivateKey returns the 32-byte big-endian scalar of priv.
func RawPrivateKey(priv *ecdsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, ErrInvalidPrivateKey
	}
	ecdhKey, err := priv.ECDH()
	if err != nil || ecdhKey.Curve() != ecdh.P256() {
		return nil, ErrInvalidPrivateKey.WithCause(err)
	}
	return ecdhKey.Bytes(), nil
}
