package verifier

import (
	"errors"

	"github.com/luca-patrignani/billchain/ledger"
)

// InvalidMarker terminates the output of an invalid verdict.
const InvalidMarker = "BLOCKCHAIN INVALID"

type State int

const (
	Idle State = iota
	Running
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Result is the verdict of a run. Report is set only when State is Valid; Err
// and Line only when it is Invalid. Line is the offending input line, if the
// failure can be located.
type Result struct {
	State  State
	Err    error
	Report []ledger.Entry
	Line   string
}

func (r Result) Valid() bool {
	return r.State == Valid
}

// Lines renders the verdict: one line per account for a valid chain, or the
// diagnostic, the offending line and InvalidMarker otherwise.
func (r Result) Lines() []string {
	if r.Valid() {
		out := make([]string, len(r.Report))
		for i, e := range r.Report {
			out[i] = e.String()
		}
		return out
	}
	var out []string
	if r.Err != nil {
		out = append(out, r.Err.Error())
	}
	if r.Line != "" {
		out = append(out, r.Line)
	}
	return append(out, InvalidMarker)
}

func validResult(accounts *ledger.Accounts) Result {
	return Result{State: Valid, Report: accounts.Report()}
}

func invalidResult(err error) Result {
	r := Result{State: Invalid, Err: err}
	var be *ledger.BlockError
	if errors.As(err, &be) {
		r.Line = be.Raw
	}
	return r
}
