package vapid

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Verifier
type Option func(*Verifier)

// WithConfig replaces the whole configuration
func WithConfig(config Config) Option {
	return func(v *Verifier) {
		timeFunc := v.config.timeFunc
		v.config = config
		if v.config.timeFunc == nil {
			v.config.timeFunc = timeFunc
		}
	}
}

// WithLeeway sets the tolerated clock skew
func WithLeeway(leeway time.Duration) Option {
	return func(v *Verifier) {
		v.config.Leeway = leeway
	}
}

// WithAudience requires the aud claim to contain audience
func WithAudience(audience string) Option {
	return func(v *Verifier) {
		v.config.Audience = audience
	}
}

// WithSubject requires the sub claim to equal subject
func WithSubject(subject string) Option {
	return func(v *Verifier) {
		v.config.Subject = subject
	}
}

// WithExpirationRequired rejects tokens without exp
func WithExpirationRequired() Option {
	return func(v *Verifier) {
		v.config.RequireExpiration = true
	}
}

// WithConcurrency bounds the number of tokens VerifyAll checks at once
func WithConcurrency(n int) Option {
	return func(v *Verifier) {
		v.config.Concurrency = n
	}
}

// WithTimeFunc overrides the clock used for time-based claims
func WithTimeFunc(f func() time.Time) Option {
	return func(v *Verifier) {
		v.config.timeFunc = f
	}
}

// WithRegisterer enables Prometheus metrics on reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(v *Verifier) {
		v.registerer = reg
	}
}
