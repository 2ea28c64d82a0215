package verifier

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/luca-patrignani/billchain/ledger"
)

const (
	passChain     = "chain"
	passIntegrity = "integrity"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billchain_verifications_total",
		Help: "Total number of verification runs by verdict",
	}, []string{"verdict"})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billchain_verification_failures_total",
		Help: "Total number of invalid verdicts by failure kind",
	}, []string{"kind"})

	blocksScanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billchain_blocks_scanned_total",
		Help: "Total number of blocks examined by each pass",
	}, []string{"pass"})

	hashCancellations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billchain_hash_pass_cancellations_total",
		Help: "Hash integrity passes cancelled because the chain scan failed first",
	})

	verificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "billchain_verification_duration_seconds",
		Help:    "Wall time of a verification run",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)

// WriteMetrics writes every collector of the default registry to path in the
// Prometheus text format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

// scanned is the number of blocks a pass examined before returning err.
func scanned(err error, total int) int {
	var be *ledger.BlockError
	if errors.As(err, &be) {
		return be.Index + 1
	}
	return total
}

func failureKind(err error) string {
	if errors.Is(err, ErrHashTimeout) {
		return "hash_timeout"
	}
	if k, ok := ledger.KindOf(err); ok {
		return string(k)
	}
	return "other"
}
