package vapid

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kochabx/vapid/errors"
)

const (
	metricsNamespace = "vapid"

	resultOK       = "ok"
	resultCanceled = "canceled"
	resultError    = "error"
)

// Metrics holds the verifier collectors
type Metrics struct {
	verifications *prometheus.CounterVec
	duration      prometheus.Histogram
}

// NewMetrics registers the verifier collectors on reg. Collectors already
// registered by another Verifier are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	verifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "verifications_total",
			Help:      "Total number of token verifications by result",
		},
		[]string{"result"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "verification_duration_seconds",
			Help:      "Token verification latency in seconds",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		},
	)

	if err := register(reg, &verifications); err != nil {
		return nil, err
	}
	if err := register(reg, &duration); err != nil {
		return nil, err
	}

	return &Metrics{
		verifications: verifications,
		duration:      duration,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				*c = existing
				return nil
			}
		}
		return err
	}
	return nil
}

func (m *Metrics) observe(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(resultLabel(err)).Inc()
	m.duration.Observe(d.Seconds())
}

var resultLabels = []struct {
	err   error
	label string
}{
	{ErrMalformedToken, "malformed_token"},
	{ErrVerificationFailed, "verification_failed"},
	{ErrInvalidKeyLength, "invalid_key_length"},
	{ErrInvalidPointFormat, "invalid_point_format"},
	{ErrMalformedKeyEncoding, "malformed_key_encoding"},
	{ErrInvalidPublicKey, "invalid_public_key"},
}

func resultLabel(err error) string {
	if err == nil {
		return resultOK
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resultCanceled
	}
	for _, rl := range resultLabels {
		if errors.Is(err, rl.err) {
			return rl.label
		}
	}
	return resultError
}
