package ledger

import (
	"context"

	"github.com/luca-patrignani/billchain/hasher"
)

// CheckHash recomputes the hash of b over its canonical string and compares it
// with the stored one.
func CheckHash(b Block) error {
	expected, err := hasher.Sum(b.Canonical())
	if err != nil {
		return &HashMismatchError{LineNumber: b.LineNumber, Actual: b.Hash, Err: err}
	}
	if expected != b.Hash {
		return &HashMismatchError{LineNumber: b.LineNumber, Expected: expected, Actual: b.Hash}
	}
	return nil
}

// VerifyIntegrity checks the stored hash of every block, stopping at the first
// mismatch. It reads bc only and returns ctx.Err() as soon as ctx is done.
func VerifyIntegrity(ctx context.Context, bc *Blockchain) error {
	for i, b := range bc.blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := CheckHash(b); err != nil {
			return &BlockError{Index: i, Raw: b.Raw, Err: err}
		}
	}
	return nil
}
