package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindParse             Kind = "parse"
	KindPattern           Kind = "pattern"
	KindEmptyTransactions Kind = "empty_transactions"
	KindNegativeBalance   Kind = "negative_balance"
	KindBalanceOverflow   Kind = "balance_overflow"
	KindLineNumber        Kind = "line_number"
	KindLinkage           Kind = "linkage"
	KindTimestamp         Kind = "timestamp"
	KindHashMismatch      Kind = "hash_mismatch"
)

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) (Kind, bool) {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return "", false
}

// BlockError locates a failure inside the input. Index is the zero based
// position of the line, Raw its text without the line terminator.
type BlockError struct {
	Index int
	Raw   string
	Err   error
}

func (e *BlockError) Error() string { return e.Err.Error() }

func (e *BlockError) Unwrap() error { return e.Err }

// ParseError is returned when a line is not made of five '|' separated fields
// or its line number field is not a decimal number.
type ParseError struct {
	Index  int
	Fields int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input line %d: %s", e.Index+1, e.Reason)
}

func (e *ParseError) Kind() Kind { return KindParse }

// PatternError is returned for a transaction record that does not follow the
// grammar SRC>DDDDDD(AMOUNT).
type PatternError struct {
	LineNumber int
	Record     string
	Reason     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("line %d: invalid transaction %q: %s", e.LineNumber, e.Record, e.Reason)
}

func (e *PatternError) Kind() Kind { return KindPattern }

type EmptyTransactionListError struct {
	LineNumber int
}

func (e *EmptyTransactionListError) Error() string {
	return fmt.Sprintf("line %d: empty transaction list", e.LineNumber)
}

func (e *EmptyTransactionListError) Kind() Kind { return KindEmptyTransactions }

// NegativeBalanceError lists, in ascending account order, every account left
// below zero at the end of a block.
type NegativeBalanceError struct {
	LineNumber int
	Accounts   []Entry
}

func (e *NegativeBalanceError) Error() string {
	parts := make([]string, len(e.Accounts))
	for i, a := range e.Accounts {
		parts[i] = fmt.Sprintf("%06d has %d billcoins", a.Account, a.Balance)
	}
	return fmt.Sprintf("line %d: negative balance: %s", e.LineNumber, strings.Join(parts, ", "))
}

func (e *NegativeBalanceError) Kind() Kind { return KindNegativeBalance }

type BalanceOverflowError struct {
	LineNumber int
	Account    int
}

func (e *BalanceOverflowError) Error() string {
	return fmt.Sprintf("line %d: balance of account %06d overflows", e.LineNumber, e.Account)
}

func (e *BalanceOverflowError) Kind() Kind { return KindBalanceOverflow }

type LineNumberError struct {
	Expected int
	Got      int
}

func (e *LineNumberError) Error() string {
	return fmt.Sprintf("invalid line number: expected %d, got %d", e.Expected, e.Got)
}

func (e *LineNumberError) Kind() Kind { return KindLineNumber }

type LinkageError struct {
	LineNumber int
	Expected   string
	Got        string
}

func (e *LinkageError) Error() string {
	return fmt.Sprintf("line %d: invalid prev hash: expected %s, got %s", e.LineNumber, e.Expected, e.Got)
}

func (e *LinkageError) Kind() Kind { return KindLinkage }

type TimestampError struct {
	LineNumber int
	Prev       string
	Curr       string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("line %d: timestamp %s is not after %s", e.LineNumber, e.Curr, e.Prev)
}

func (e *TimestampError) Kind() Kind { return KindTimestamp }

// HashMismatchError reports a block whose stored hash differs from the one
// computed over its canonical string. Err is set when the canonical string
// could not be hashed at all.
type HashMismatchError struct {
	LineNumber int
	Expected   string
	Actual     string
	Err        error
}

func (e *HashMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: cannot hash block: %v", e.LineNumber, e.Err)
	}
	return fmt.Sprintf("line %d: invalid hash: expected %s, got %s", e.LineNumber, e.Expected, e.Actual)
}

func (e *HashMismatchError) Unwrap() error { return e.Err }

func (e *HashMismatchError) Kind() Kind { return KindHashMismatch }
