package verifier

import (
	"io"
	"log/slog"
	"time"
)

type Option func(Verifier) Verifier

// New returns a Verifier that hashes in parallel with the chain scan, with no
// bound on the hash pass and a discarding logger.
func New(opts ...Option) *Verifier {
	v := Verifier{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		v = opt(v)
	}
	return &v
}

func WithLogger(logger *slog.Logger) Option {
	return func(v Verifier) Verifier {
		if logger != nil {
			v.logger = logger
		}
		return v
	}
}

// WithHashTimeout bounds the wall time of the hash integrity pass. Zero
// disables the bound.
func WithHashTimeout(timeout time.Duration) Option {
	return func(v Verifier) Verifier {
		v.hashTimeout = timeout
		return v
	}
}

// WithSequentialHashing starts the hash integrity pass only after the chain
// scan has succeeded.
func WithSequentialHashing() Option {
	return func(v Verifier) Verifier {
		v.sequential = true
		return v
	}
}
