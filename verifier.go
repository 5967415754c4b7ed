package minpk

import (
	"time"

	"go.uber.org/zap"

	"github.com/Iscaraca/minpk/internal/curve"
)

const (
	opVerify          = "verify"
	opVerifyAggregate = "verify_aggregate"
	opAggregate       = "aggregate"
)

// Verifier runs the min_pk protocol on top of a curve engine. It holds no
// per-call state and is safe for concurrent use.
type Verifier struct {
	engine  curve.Engine
	log     *zap.Logger
	metrics *Metrics
}

type Option func(*Verifier)

// WithEngine overrides the curve engine.
func WithEngine(e curve.Engine) Option {
	return func(v *Verifier) {
		v.engine = e
	}
}

// WithLogger sets the logger rejected inputs are reported to, at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(v *Verifier) {
		v.log = log
	}
}

// WithMetrics records outcomes and latencies of every call.
func WithMetrics(m *Metrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}

func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		engine: curve.Default(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Engine returns the name of the backing curve library.
func (v *Verifier) Engine() string {
	return v.engine.Name()
}

func (v *Verifier) observe(op string, start time.Time, err error) {
	if v.metrics != nil {
		v.metrics.observe(op, reason(err), time.Since(start))
	}
	if err != nil {
		v.log.Debug("rejected",
			zap.String("op", op),
			zap.String("reason", reason(err)),
			zap.Error(err),
		)
	}
}
