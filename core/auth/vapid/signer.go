package vapid

import (
	"crypto/ecdsa"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kochabx/vapid/core/crypto/eckey"
)

// Signer issues ES256 tokens with a raw P-256 private scalar
type Signer struct {
	key       *ecdsa.PrivateKey
	publicKey string
}

// NewSigner builds a Signer from a 32-byte private scalar
func NewSigner(rawPrivate []byte) (*Signer, error) {
	container, err := eckey.EncodePrivateKey(rawPrivate)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(container.PEM())
	if err != nil {
		return nil, ErrInvalidPrivateKey.WithCause(err)
	}

	rawPublic, err := eckey.RawPublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}

	return &Signer{
		key:       key,
		publicKey: eckey.EncodeBase64URL(rawPublic),
	}, nil
}

// NewSignerFromBase64URL builds a Signer from a base64url private scalar
func NewSignerFromBase64URL(s string) (*Signer, error) {
	raw, err := eckey.DecodeBase64URL(s)
	if err != nil {
		return nil, err
	}
	return NewSigner(raw)
}

// Sign returns the compact ES256 serialization of claims
func (s *Signer) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(SigningMethod, claims).SignedString(s.key)
}

// PublicKeyBase64URL returns the matching raw public point, base64url encoded
func (s *Signer) PublicKeyBase64URL() string {
	return s.publicKey
}

// PublicKey returns the matching public key
func (s *Signer) PublicKey() *ecdsa.PublicKey {
	return &s.key.PublicKey
}
