// Package ledger implements parsing and validation of billchain files: an
// append-only, hash-linked log of balance transfers.
//
// # Core Components
//
// Block: A single ledger line holding a line number, the hash of the
// previous block, a batch of transactions, a timestamp and its own hash.
//
// Blockchain: The immutable sequence of parsed blocks. It is safe to share
// between goroutines.
//
// Accounts: The validation context of one run. It owns account balances, the
// set of accounts currently in deficit within a block and the index of every
// account that received funds.
//
// # Validation
//
// Validation is split into two independent scans over the same Blockchain:
//   - ValidateChain walks the blocks in order, enforcing line numbering,
//     prev-hash linkage, strictly increasing timestamps and transaction
//     validity. It is the only scan that touches Accounts.
//   - VerifyIntegrity recomputes the keyed hash of each block and compares it
//     to the stored one. It shares no mutable state and can run concurrently.
//
// Both scans stop at the first failure and return a *BlockError carrying the
// offending line and a typed cause.
package ledger
