package ledger

import "strings"

// Cursor is the state carried from one block to the next while scanning.
type Cursor struct {
	LineNumber int
	Hash       string
	Timestamp  string
}

// InitialCursor is the state before block 0.
func InitialCursor() Cursor {
	return Cursor{LineNumber: -1, Hash: "0", Timestamp: "0.0"}
}

// Check verifies that b may follow the cursor: consecutive line number,
// matching prev hash and a strictly later timestamp.
func (c Cursor) Check(b Block) error {
	if b.LineNumber != c.LineNumber+1 {
		return &LineNumberError{Expected: c.LineNumber + 1, Got: b.LineNumber}
	}
	if b.PrevHash != c.Hash {
		return &LinkageError{LineNumber: b.LineNumber, Expected: c.Hash, Got: b.PrevHash}
	}
	if !GreaterTimestamp(b.Timestamp, c.Timestamp) {
		return &TimestampError{LineNumber: b.LineNumber, Prev: c.Timestamp, Curr: b.Timestamp}
	}
	return nil
}

// Advance moves the cursor past b. The stated hash is carried as written;
// whether it is correct is for VerifyIntegrity to decide.
func (c Cursor) Advance(b Block) Cursor {
	return Cursor{LineNumber: b.LineNumber, Hash: b.Hash, Timestamp: b.Timestamp}
}

// GreaterTimestamp reports whether a is strictly later than b. Timestamps are
// "seconds.fraction". Seconds are compared as strings when they differ,
// otherwise fractions are compared by numeric magnitude. If either side is
// malformed, i.e. not two non-empty runs of digits joined by '.', a is never
// greater.
func GreaterTimestamp(a, b string) bool {
	va, ok := splitTimestamp(a)
	if !ok {
		return false
	}
	vb, ok := splitTimestamp(b)
	if !ok {
		return false
	}
	if va[0] != vb[0] {
		return va[0] > vb[0]
	}
	return greaterMagnitude(va[1], vb[1])
}

func splitTimestamp(ts string) ([]string, bool) {
	parts := strings.Split(ts, ".")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return nil, false
	}
	return parts, true
}

// greaterMagnitude compares two digit runs by numeric value.
func greaterMagnitude(a, b string) bool {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}

// ValidateChain scans bc in order, checking each block against the cursor and
// applying its transactions to accounts. It stops at the first failure. An
// empty chain is valid.
func ValidateChain(bc *Blockchain, accounts *Accounts) error {
	cursor := InitialCursor()
	for i, b := range bc.blocks {
		if err := cursor.Check(b); err != nil {
			return &BlockError{Index: i, Raw: b.Raw, Err: err}
		}
		if err := accounts.VerifyBlockTransactions(b.Transactions, b.LineNumber); err != nil {
			return &BlockError{Index: i, Raw: b.Raw, Err: err}
		}
		cursor = cursor.Advance(b)
	}
	return nil
}
