package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldSeparator = "|"
	blockFields    = 5
)

// Block is one ledger line. Every field keeps the text exactly as written;
// LineNumber is the decoded form of RawLineNumber.
type Block struct {
	LineNumber    int
	RawLineNumber string
	PrevHash      string
	Transactions  string
	Timestamp     string
	Hash          string
	Raw           string
}

// ParseBlock splits raw into the five block fields. It only checks structure:
// the field count and that the line number is a decimal number.
func ParseBlock(raw string) (Block, error) {
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")

	fields := strings.Split(raw, fieldSeparator)
	if len(fields) != blockFields {
		return Block{}, &ParseError{
			Fields: len(fields),
			Reason: fmt.Sprintf("expected %d fields separated by %q, got %d", blockFields, fieldSeparator, len(fields)),
		}
	}
	if !isDigits(fields[0]) {
		return Block{}, &ParseError{Fields: len(fields), Reason: fmt.Sprintf("line number %q is not a decimal number", fields[0])}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Block{}, &ParseError{Fields: len(fields), Reason: fmt.Sprintf("line number %q is out of range", fields[0])}
	}

	return Block{
		LineNumber:    n,
		RawLineNumber: fields[0],
		PrevHash:      fields[1],
		Transactions:  fields[2],
		Timestamp:     fields[3],
		Hash:          fields[4],
		Raw:           raw,
	}, nil
}

// Canonical returns the text the block hash is computed over: the first four
// fields joined by '|', verbatim.
func (b Block) Canonical() string {
	return strings.Join([]string{b.RawLineNumber, b.PrevHash, b.Transactions, b.Timestamp}, fieldSeparator)
}

func (b Block) String() string {
	return b.Canonical() + fieldSeparator + b.Hash
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
