package ledger

import (
	"strconv"
	"strings"
)

// SystemAccount is the source token of minting transactions.
const SystemAccount = "SYSTEM"

const (
	accountDigits     = 6
	transferSeparator = ">"
	recordSeparator   = ":"
)

// Transaction moves Amount billcoins from Source to Dest. Source is either
// SystemAccount or a six digit account id as written.
type Transaction struct {
	Source string
	Dest   int
	Amount int64
}

// IsMint reports whether the transaction creates billcoins.
func (tx Transaction) IsMint() bool {
	return tx.Source == SystemAccount
}

// SourceAccount returns the numeric source account. ok is false for mints.
func (tx Transaction) SourceAccount() (id int, ok bool) {
	if tx.IsMint() {
		return 0, false
	}
	id, err := strconv.Atoi(tx.Source)
	return id, err == nil
}

// ParseTransaction decodes a record of the form SRC>DDDDDD(AMOUNT), where SRC is
// SYSTEM or six digits, DDDDDD is six digits and AMOUNT is one or more digits.
// The returned *PatternError has no line number set.
func ParseTransaction(raw string) (Transaction, error) {
	fail := func(reason string) (Transaction, error) {
		return Transaction{}, &PatternError{Record: raw, Reason: reason}
	}

	src, rest, ok := strings.Cut(raw, transferSeparator)
	if !ok {
		return fail("missing '>'")
	}
	if src != SystemAccount && !isAccount(src) {
		return fail("source must be SYSTEM or a 6 digit account")
	}
	if len(rest) < accountDigits || !isAccount(rest[:accountDigits]) {
		return fail("destination must be a 6 digit account")
	}
	dest, _ := strconv.Atoi(rest[:accountDigits])

	amount := rest[accountDigits:]
	if len(amount) < 2 || amount[0] != '(' || amount[len(amount)-1] != ')' {
		return fail("amount must be enclosed in parentheses")
	}
	digits := amount[1 : len(amount)-1]
	if !isDigits(digits) {
		return fail("amount must be a non-negative integer")
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return fail("amount out of range")
	}

	return Transaction{Source: src, Dest: dest, Amount: n}, nil
}

// MatchTransaction reports whether raw follows the transaction grammar.
func MatchTransaction(raw string) bool {
	_, err := ParseTransaction(raw)
	return err == nil
}

func isAccount(s string) bool {
	return len(s) == accountDigits && isDigits(s)
}
