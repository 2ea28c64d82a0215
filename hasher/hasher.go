package hasher

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnsupportedRune is matched by every *UnsupportedRuneError.
var ErrUnsupportedRune = errors.New("unsupported rune")

// UnsupportedRuneError reports a code point that has no weight in the table.
type UnsupportedRuneError struct {
	Rune   rune
	Offset int
}

func (e *UnsupportedRuneError) Error() string {
	return fmt.Sprintf("unsupported rune %q at byte offset %d", e.Rune, e.Offset)
}

func (e *UnsupportedRuneError) Is(target error) bool {
	return target == ErrUnsupportedRune
}

const modulus = 1 << 16

// weights is indexed by code point; a zero entry means unsupported since no
// weight in the table is zero.
var weights = [128]uint16{
	'(': 0x6e1f, ')': 0xf331, '.': 0x6b37, ':': 0x2ca7, '>': 0x0077, '|': 0xc8af,

	'0': 0xb1bf, '1': 0xd989, '2': 0x3207, '3': 0xdf67, '4': 0x2e0f,
	'5': 0xbd25, '6': 0x57d7, '7': 0xd4db, '8': 0x515f, '9': 0x4d61,

	'E': 0x2255, 'M': 0x29ad, 'S': 0x3d07, 'T': 0xcc8f, 'Y': 0x6bc1,

	'a': 0x1919, 'b': 0xd5c7, 'c': 0x9dd7, 'd': 0x43cf, 'e': 0x0ab5,
	'f': 0xcf97, 'g': 0x05cb, 'h': 0x9b1f, 'i': 0xcff1, 'j': 0x3867,
	'k': 0xbdbf, 'l': 0x296f, 'm': 0x100d, 'n': 0x6037, 'o': 0x64f3,
	'p': 0xbebf, 'q': 0xba49, 'r': 0x9707, 's': 0x8aa7, 't': 0x2b0f,
	'u': 0x2de5, 'v': 0x2cd7, 'w': 0x961b, 'x': 0x3e5f, 'y': 0x8221,
	'z': 0x71a7,
}

// Weight returns the table weight of r and whether r is supported.
func Weight(r rune) (uint16, bool) {
	if r < 0 || int(r) >= len(weights) {
		return 0, false
	}
	w := weights[r]
	return w, w != 0
}

// Sum returns the keyed checksum of text. Invalid UTF-8 decodes to
// utf8.RuneError, which is unsupported.
func Sum(text string) (string, error) {
	var total uint32
	for i, r := range text {
		w, ok := Weight(r)
		if !ok {
			return "", &UnsupportedRuneError{Rune: r, Offset: i}
		}
		total += uint32(w)
	}
	return strconv.FormatUint(uint64(total%modulus), 16), nil
}

// MustSum is like Sum but panics on unsupported input. It is meant for
// fixtures built from known-good text.
func MustSum(text string) string {
	h, err := Sum(text)
	if err != nil {
		panic(err)
	}
	return h
}
