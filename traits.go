package substring

import (
	"bytes"
	"cmp"
)

// Traits supplies the character-run semantics a View delegates: how long
// a terminated run is, and how two runs order. The view itself never
// looks at element values directly, so swapping traits swaps the
// character representation.
type Traits[C any] interface {
	// Length reports the number of elements in p before the
	// terminator, or len(p) when p holds no terminator.
	Length(p []C) int
	// Compare orders a and b lexicographically: negative, zero or
	// positive. It must not read past len of either argument.
	Compare(a, b []C) int
}

// OrderedTraits is the generic instantiation for any ordered element
// type. The zero value of C acts as the terminator.
type OrderedTraits[C cmp.Ordered] struct{}

func (OrderedTraits[C]) Length(p []C) int {
	var zero C
	for i, c := range p {
		if c == zero {
			return i
		}
	}
	return len(p)
}

func (OrderedTraits[C]) Compare(a, b []C) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// ByteTraits is the byte specialization, routed through package bytes so
// comparisons vectorize.
type ByteTraits struct{}

func (ByteTraits) Length(p []byte) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}
	return len(p)
}

func (ByteTraits) Compare(a, b []byte) int { return bytes.Compare(a, b) }

// RuneTraits is the wide-character instantiation.
type RuneTraits = OrderedTraits[rune]
