package ledger

import (
	"fmt"
	"strconv"

	"github.com/luca-patrignani/billchain/hasher"
)

const (
	block0 = "0|0|SYSTEM>569274(100)|1553184699.650330000|288d"
	block1 = "1|288d|569274>735567(12):735567>561180(3):735567>689881(2):SYSTEM>532260(100)|1553184699.652449000|92a2"
)

// seal builds a correctly hashed ledger line and returns it with its hash.
func seal(lineNumber int, prevHash, transactions, timestamp string) (string, string) {
	canonical := fmt.Sprintf("%d|%s|%s|%s", lineNumber, prevHash, transactions, timestamp)
	h := hasher.MustSum(canonical)
	return canonical + "|" + h, h
}

// chainOf builds a linked, correctly hashed chain from the given transaction
// blobs. Timestamps increase by one second per block.
func chainOf(blobs ...string) []string {
	lines := make([]string, 0, len(blobs))
	prev := "0"
	for i, blob := range blobs {
		line, h := seal(i, prev, blob, strconv.Itoa(1553184699+i)+".000000001")
		lines = append(lines, line)
		prev = h
	}
	return lines
}

// mustParseChain parses lines and panics on a malformed line.
func mustParseChain(lines ...string) *Blockchain {
	bc, err := ParseChain(lines)
	if err != nil {
		panic(err)
	}
	return bc
}
