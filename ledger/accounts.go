package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Entry is the balance of a single account.
type Entry struct {
	Account int
	Balance int64
}

func (e Entry) String() string {
	return fmt.Sprintf("%06d: %d billcoins", e.Account, e.Balance)
}

// Accounts is the validation context of a single run. It is not safe for
// concurrent use and must not be reused across runs.
type Accounts struct {
	balances map[int]int64
	// accounts below zero within the block being applied
	negative map[int]struct{}
	// every account that ever received funds
	index map[int]struct{}
}

func NewAccounts() *Accounts {
	return &Accounts{
		balances: make(map[int]int64),
		negative: make(map[int]struct{}),
		index:    make(map[int]struct{}),
	}
}

// Apply debits the source, unless it is SYSTEM, and credits the destination.
// A debited account left below zero joins the negative set; a credited account
// back at zero or above leaves it.
func (a *Accounts) Apply(tx Transaction) error {
	if src, ok := tx.SourceAccount(); ok {
		bal := a.balances[src]
		if bal < math.MinInt64+tx.Amount {
			return &BalanceOverflowError{Account: src}
		}
		bal -= tx.Amount
		a.balances[src] = bal
		if bal < 0 {
			a.negative[src] = struct{}{}
		}
	}

	bal := a.balances[tx.Dest]
	if bal > math.MaxInt64-tx.Amount {
		return &BalanceOverflowError{Account: tx.Dest}
	}
	bal += tx.Amount
	a.balances[tx.Dest] = bal
	a.index[tx.Dest] = struct{}{}
	if bal >= 0 {
		delete(a.negative, tx.Dest)
	}
	return nil
}

// VerifyBlockTransactions parses and applies the ':' separated records of blob
// in order. A balance may dip below zero in the middle of the block; only
// accounts still negative once every record is applied are a violation.
func (a *Accounts) VerifyBlockTransactions(blob string, lineNumber int) error {
	if blob == "" {
		return &EmptyTransactionListError{LineNumber: lineNumber}
	}
	for _, record := range strings.Split(blob, recordSeparator) {
		tx, err := ParseTransaction(record)
		if err != nil {
			pe := err.(*PatternError)
			pe.LineNumber = lineNumber
			return pe
		}
		if err := a.Apply(tx); err != nil {
			oe := err.(*BalanceOverflowError)
			oe.LineNumber = lineNumber
			return oe
		}
	}

	if len(a.negative) == 0 {
		return nil
	}
	offenders := make([]Entry, 0, len(a.negative))
	for id := range a.negative {
		offenders = append(offenders, Entry{Account: id, Balance: a.balances[id]})
	}
	sort.Slice(offenders, func(i, j int) bool {
		return offenders[i].Account < offenders[j].Account
	})
	clear(a.negative)
	return &NegativeBalanceError{LineNumber: lineNumber, Accounts: offenders}
}

// Balance returns the current balance of account, zero if it was never seen.
func (a *Accounts) Balance(account int) int64 {
	return a.balances[account]
}

// Report lists every account that received funds in ascending id order.
func (a *Accounts) Report() []Entry {
	ids := make([]int, 0, len(a.index))
	for id := range a.index {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	report := make([]Entry, len(ids))
	for i, id := range ids {
		report[i] = Entry{Account: id, Balance: a.balances[id]}
	}
	return report
}
