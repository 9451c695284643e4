package vapid

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds verification settings. The zero value verifies the signature
// and the time-based claims that are present.
type Config struct {
	// Leeway is the clock skew tolerated on exp, nbf and iat
	Leeway time.Duration `json:"leeway" mapstructure:"leeway" validate:"gte=0"`

	// Audience, when set, must match the aud claim
	Audience string `json:"audience" mapstructure:"audience"`

	// Subject, when set, must match the sub claim
	Subject string `json:"subject" mapstructure:"subject"`

	// RequireExpiration rejects tokens without an exp claim
	RequireExpiration bool `json:"requireExpiration" mapstructure:"require_expiration"`

	// Concurrency bounds the fan-out of VerifyAll
	Concurrency int `json:"concurrency" mapstructure:"concurrency" default:"8" validate:"gte=1,lte=1024"`

	timeFunc func() time.Time
}

// SigningMethod is the only accepted token algorithm.
var SigningMethod = jwt.SigningMethodES256

func (c *Config) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{SigningMethod.Alg()}),
	}
	if c.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(c.Leeway))
	}
	if c.Audience != "" {
		opts = append(opts, jwt.WithAudience(c.Audience))
	}
	if c.Subject != "" {
		opts = append(opts, jwt.WithSubject(c.Subject))
	}
	if c.RequireExpiration {
		opts = append(opts, jwt.WithExpirationRequired())
	}
	if c.timeFunc != nil {
		opts = append(opts, jwt.WithTimeFunc(c.timeFunc))
	}
	return opts
}
