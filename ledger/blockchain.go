package ledger

// Blockchain is an immutable sequence of parsed blocks.
type Blockchain struct {
	blocks []Block
}

// ParseChain parses every line in order. On the first malformed line it stops
// and returns the blocks parsed so far together with a *BlockError wrapping a
// *ParseError, so that failures in earlier blocks can still be reported first.
func ParseChain(lines []string) (*Blockchain, error) {
	bc := &Blockchain{
		blocks: make([]Block, 0, len(lines)),
	}
	for i, line := range lines {
		b, err := ParseBlock(line)
		if err != nil {
			pe := err.(*ParseError)
			pe.Index = i
			return bc, &BlockError{Index: i, Raw: line, Err: pe}
		}
		bc.blocks = append(bc.blocks, b)
	}
	return bc, nil
}

func (bc *Blockchain) Len() int {
	return len(bc.blocks)
}
