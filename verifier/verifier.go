package verifier

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/luca-patrignani/billchain/ledger"
)

// ErrHashTimeout is reported when the hash integrity pass exceeds its bound.
var ErrHashTimeout = errors.New("hash integrity check timed out")

// maxLineSize bounds a single ledger line read by VerifyFile.
const maxLineSize = 64 << 20

// InputError is returned by VerifyFile when the ledger cannot be read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("File %s doesn't exist.", e.Path)
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Verifier runs verification passes. A Verifier holds no per-run state and may
// be used for several runs, including concurrent ones.
type Verifier struct {
	logger      *slog.Logger
	hashTimeout time.Duration
	sequential  bool
}

// run tracks the state of a single verification.
type run struct {
	logger *slog.Logger
	state  State
}

func (r *run) transition(to State) {
	r.logger.Debug("verification state changed", "from", r.state, "to", to)
	r.state = to
}

func (r *run) finish(res Result) Result {
	r.transition(res.State)
	return res
}

// Verify validates lines, one ledger line each, and returns the verdict.
func (v *Verifier) Verify(ctx context.Context, lines []string) Result {
	start := time.Now()
	r := &run{logger: v.logger, state: Idle}
	r.transition(Running)

	bc, parseErr := ledger.ParseChain(lines)
	v.logger.Debug("parsed ledger", "lines", len(lines), "blocks", bc.Len())

	var res Result
	if v.sequential {
		res = r.finish(v.verifySequential(ctx, bc, parseErr))
	} else {
		res = r.finish(v.verifyConcurrent(ctx, bc, parseErr))
	}

	verificationDuration.Observe(time.Since(start).Seconds())
	verificationsTotal.WithLabelValues(res.State.String()).Inc()
	if res.Valid() {
		v.logger.Info("blockchain valid", "blocks", bc.Len(), "accounts", len(res.Report))
	} else {
		failuresTotal.WithLabelValues(failureKind(res.Err)).Inc()
		v.logger.Info("blockchain invalid", "error", res.Err)
	}
	return res
}

// VerifyFile reads the ledger at path and verifies it. The error is non-nil
// only when the file cannot be read, in which case it is an *InputError.
func (v *Verifier) VerifyFile(ctx context.Context, path string) (Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return Result{}, &InputError{Path: path, Err: err}
	}
	return v.Verify(ctx, lines), nil
}

func readLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fs.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (v *Verifier) verifyConcurrent(ctx context.Context, bc *ledger.Blockchain, parseErr error) Result {
	hashCtx, cancel := v.hashContext(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- v.checkIntegrity(hashCtx, bc)
	}()

	accounts, err := v.checkContent(bc, parseErr)
	if err != nil {
		cancel()
		hashCancellations.Inc()
		v.logger.Debug("hash integrity pass cancelled", "reason", err)
		return invalidResult(err)
	}

	if err := v.integrityVerdict(ctx, <-done); err != nil {
		return invalidResult(err)
	}
	return validResult(accounts)
}

func (v *Verifier) verifySequential(ctx context.Context, bc *ledger.Blockchain, parseErr error) Result {
	accounts, err := v.checkContent(bc, parseErr)
	if err != nil {
		return invalidResult(err)
	}

	hashCtx, cancel := v.hashContext(ctx)
	defer cancel()
	if err := v.integrityVerdict(ctx, v.checkIntegrity(hashCtx, bc)); err != nil {
		return invalidResult(err)
	}
	return validResult(accounts)
}

// checkContent runs the chain scan on a fresh validation context. A parse
// failure is reported only once every block before it has been validated.
func (v *Verifier) checkContent(bc *ledger.Blockchain, parseErr error) (*ledger.Accounts, error) {
	if bc.Len() == 0 && parseErr != nil {
		blocksScanned.WithLabelValues(passChain).Add(1)
		return nil, parseErr
	}
	accounts := ledger.NewAccounts()
	err := ledger.ValidateChain(bc, accounts)
	if err == nil {
		err = parseErr
	}
	blocksScanned.WithLabelValues(passChain).Add(float64(scanned(err, bc.Len())))
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (v *Verifier) checkIntegrity(ctx context.Context, bc *ledger.Blockchain) error {
	err := ledger.VerifyIntegrity(ctx, bc)
	if err == nil || !isContextErr(err) {
		blocksScanned.WithLabelValues(passIntegrity).Add(float64(scanned(err, bc.Len())))
	}
	return err
}

// integrityVerdict maps the worker's result to the error reported for the run.
func (v *Verifier) integrityVerdict(parent context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil:
		return fmt.Errorf("%w after %s", ErrHashTimeout, v.hashTimeout)
	case isContextErr(err):
		return fmt.Errorf("verification aborted: %w", err)
	}
	return err
}

func (v *Verifier) hashContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if v.hashTimeout > 0 {
		return context.WithTimeout(ctx, v.hashTimeout)
	}
	return context.WithCancel(ctx)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
