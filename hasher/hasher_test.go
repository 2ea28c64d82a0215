package hasher

import (
	"errors"
	"testing"
)

func TestSumKnownValues(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"bill", "f896"},
		{"0|0|SYSTEM>569274(100)|1553184699.650330000", "288d"},
		{"1|288d|569274>735567(12):735567>561180(3):735567>689881(2):SYSTEM>532260(100)|1553184699.652449000", "92a2"},
		{"", "0"},
		{">", "77"},
	}
	for _, c := range cases {
		got, err := Sum(c.text)
		if err != nil {
			t.Fatalf("Sum(%q) returned error: %v", c.text, err)
		}
		if got != c.want {
			t.Fatalf("Sum(%q) = %s, expected %s", c.text, got, c.want)
		}
	}
}

func TestSumIsDeterministic(t *testing.T) {
	text := "2|92a2|532260>569274(50)|1553184699.660000000"
	first := MustSum(text)
	for i := 0; i < 100; i++ {
		if got := MustSum(text); got != first {
			t.Fatalf("call %d returned %s, first call returned %s", i, got, first)
		}
	}
}

func TestSumRejectsUnsupportedRune(t *testing.T) {
	for _, text := range []string{"bill ", "BILL", "0|0|é", "a\nb", string([]byte{0xff})} {
		_, err := Sum(text)
		if err == nil {
			t.Fatalf("expected error for %q, got nil", text)
		}
		if !errors.Is(err, ErrUnsupportedRune) {
			t.Fatalf("expected ErrUnsupportedRune for %q, got %v", text, err)
		}
	}
}

func TestUnsupportedRuneErrorOffset(t *testing.T) {
	_, err := Sum("12 3")
	var ure *UnsupportedRuneError
	if !errors.As(err, &ure) {
		t.Fatalf("expected *UnsupportedRuneError, got %T", err)
	}
	if ure.Rune != ' ' || ure.Offset != 2 {
		t.Fatalf("expected rune ' ' at offset 2, got %q at %d", ure.Rune, ure.Offset)
	}
}

func TestWeightCoversLedgerAlphabet(t *testing.T) {
	for _, r := range "0123456789abcdefghijklmnopqrstuvwxyzSYTEM().>:|" {
		if _, ok := Weight(r); !ok {
			t.Fatalf("rune %q should be supported", r)
		}
	}
	for _, r := range []rune{'A', 'Z', ' ', '-', '\n', -1, 0x1F600} {
		if _, ok := Weight(r); ok {
			t.Fatalf("rune %q should not be supported", r)
		}
	}
}

func TestSumFitsInFourHexDigits(t *testing.T) {
	text := ""
	for i := 0; i < 500; i++ {
		text += "zy|"
	}
	got := MustSum(text)
	if len(got) < 1 || len(got) > 4 {
		t.Fatalf("expected 1 to 4 hex digits, got %q", got)
	}
}
