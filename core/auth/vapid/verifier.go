package vapid

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kochabx/vapid/core/crypto/eckey"
	"github.com/kochabx/vapid/core/tag"
	"github.com/kochabx/vapid/core/validator"
	"github.com/kochabx/vapid/errors"
)

// Verifier checks ES256 tokens against raw P-256 public keys.
// It holds no mutable state after New returns.
type Verifier struct {
	config     Config
	parser     *jwt.Parser
	registerer prometheus.Registerer
	metrics    *Metrics
}

// New creates a Verifier
func New(opts ...Option) (*Verifier, error) {
	v := &Verifier{}
	for _, opt := range opts {
		opt(v)
	}

	if err := tag.ApplyDefaults(&v.config); err != nil {
		return nil, err
	}
	if err := validator.Validate.Struct(&v.config); err != nil {
		return nil, err
	}

	if v.registerer != nil {
		metrics, err := NewMetrics(v.registerer)
		if err != nil {
			return nil, err
		}
		v.metrics = metrics
	}

	v.parser = jwt.NewParser(v.config.parserOptions()...)
	return v, nil
}

// Config returns a copy of the verifier configuration
func (v *Verifier) Config() Config {
	return v.config
}

// Verify checks that token carries a valid ES256 signature by the key encoded
// in publicKeyBase64URL and that its time-based and configured claims hold.
// On success the decoded claims are returned.
func (v *Verifier) Verify(ctx context.Context, token, publicKeyBase64URL string) (Claims, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		v.metrics.observe(err, time.Since(start))
		return nil, err
	}

	pub, err := PublicKeyFromBase64URL(publicKeyBase64URL)
	if err != nil {
		v.metrics.observe(err, time.Since(start))
		return nil, err
	}

	claims, err := v.parse(token, pub)
	v.metrics.observe(err, time.Since(start))
	return claims, err
}

// VerifyWithKey is Verify for an already parsed public key.
func (v *Verifier) VerifyWithKey(ctx context.Context, token string, pub *ecdsa.PublicKey) (Claims, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		v.metrics.observe(err, time.Since(start))
		return nil, err
	}

	claims, err := v.parse(token, pub)
	v.metrics.observe(err, time.Since(start))
	return claims, err
}

func (v *Verifier) parse(token string, pub *ecdsa.PublicKey) (Claims, error) {
	if pub == nil {
		return nil, ErrInvalidPublicKey
	}

	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pub, nil
	})
	if err != nil {
		return nil, tokenError(err)
	}
	return claims, nil
}

func tokenError(err error) error {
	var target *errors.Error
	if errors.Is(err, jwt.ErrTokenMalformed) {
		target = ErrMalformedToken
	} else {
		target = ErrVerificationFailed
	}
	return target.WithCause(err).WithMetadata(map[string]string{"reason": err.Error()})
}

// PublicKeyFromBase64URL decodes a base64url raw public point and parses it
// through its "PUBLIC KEY" container.
func PublicKeyFromBase64URL(s string) (*ecdsa.PublicKey, error) {
	raw, err := eckey.DecodeBase64URL(s)
	if err != nil {
		return nil, err
	}

	container, err := eckey.EncodePublicKey(raw)
	if err != nil {
		return nil, err
	}

	pub, err := jwt.ParseECPublicKeyFromPEM(container.PEM())
	if err != nil {
		return nil, ErrInvalidPublicKey.WithCause(err)
	}
	return pub, nil
}
