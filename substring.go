// Package substring provides a non-owning, read-only view over a
// contiguous run of characters: a slice header the view borrows but
// never owns, allocates or frees. Character semantics (Traits) and
// bounds-check behaviour (AssertPolicy) are type parameters, so a
// strict and a relaxed variant of the same view coexist in one build
// and the relaxed one carries no checking cost.
//
// The backing storage must outlive every view derived from it,
// sub-slices included. That contract is the caller's, not the view's.
package substring

import (
	"iter"

	"github.com/hirthwork/substring/internal/common"
)

// Npos marks an unbounded count: any negative n passed where a count is
// optional means "to the end".
const Npos = -1

// Owner is any container exposing its contiguous read-only buffer.
// *bytes.Buffer satisfies Owner[byte]. The returned slice is a borrow;
// implementations must not require it back.
type Owner[C any] interface {
	Bytes() []C
}

// Sink accepts a run of elements for output. io.Writer satisfies
// Sink[byte].
type Sink[C any] interface {
	Write(p []C) (n int, err error)
}

// View is a borrowed pointer+length over []C. The zero value is an
// empty view. Copying a View copies only the slice header; no operation
// touches the backing storage's lifetime or reads past Len().
type View[C comparable, T Traits[C], A AssertPolicy] struct {
	data []C
}

// String is the checked byte view.
type String = View[byte, ByteTraits, Strict]

// RawString is the unchecked byte view: checked operations never fail,
// out-of-range slicing clamps.
type RawString = View[byte, ByteTraits, Relaxed]

// Make returns a view over exactly the elements of p. No check: the
// caller vouches for p.
func Make[C comparable, T Traits[C], A AssertPolicy](p []C) View[C, T, A] {
	return View[C, T, A]{data: p}
}

// FromTerminated returns a view over the run of p preceding its
// terminator, with the length computed by the traits. A p with no
// terminator yields a view over all of it.
func FromTerminated[C comparable, T Traits[C], A AssertPolicy](p []C) View[C, T, A] {
	var t T
	return View[C, T, A]{data: p[:t.Length(p)]}
}

// FromString borrows the storage of s without copying. Go strings are
// immutable, so the borrow is safe for the life of s; the view must not
// be written through Data.
func FromString[T Traits[byte], A AssertPolicy](s string) View[byte, T, A] {
	return View[byte, T, A]{data: common.BytesView(s)}
}

// FromOwner borrows o's buffer. The view is valid only while o neither
// mutates nor discards that buffer.
func FromOwner[C comparable, T Traits[C], A AssertPolicy](o Owner[C]) View[C, T, A] {
	return View[C, T, A]{data: o.Bytes()}
}

// FromLiteral views a fixed array image minus its trailing terminator,
// the way a C string literal carries one element more than its length.
// Panics when arr is empty.
func FromLiteral[C comparable, T Traits[C], A AssertPolicy](arr []C) View[C, T, A] {
	return View[C, T, A]{data: arr[:len(arr)-1]}
}

// Len reports the number of elements in the view.
func (v View[C, T, A]) Len() int { return len(v.data) }

// Empty reports whether the view holds zero elements.
func (v View[C, T, A]) Empty() bool { return len(v.data) == 0 }

// Data returns the borrowed run itself, no copy. Callers must treat it
// as read-only.
func (v View[C, T, A]) Data() []C { return v.data }

// Index is unchecked element access; pos outside [0, Len()) panics.
func (v View[C, T, A]) Index(pos int) C { return v.data[pos] }

// At is checked element access. Under Strict a bad pos yields an error
// wrapping ErrOutOfRange; under Relaxed the check is skipped and a bad
// pos falls through to the runtime bounds panic.
func (v View[C, T, A]) At(pos int) (C, error) {
	var a A
	if err := a.OutOfRange(pos >= 0 && pos < len(v.data), "pos >= size"); err != nil {
		var zero C
		return zero, err
	}
	return v.data[pos], nil
}

// Front returns the first element. Unchecked: empty view panics.
func (v View[C, T, A]) Front() C { return v.data[0] }

// Back returns the last element. Unchecked: empty view panics.
func (v View[C, T, A]) Back() C { return v.data[len(v.data)-1] }

// PopFront drops the first element in place. Unchecked cursor
// primitive: popping an empty view panics rather than no-oping.
func (v *View[C, T, A]) PopFront() { v.data = v.data[1:] }

// PopBack drops the last element in place. Unchecked, like PopFront.
func (v *View[C, T, A]) PopBack() { v.data = v.data[:len(v.data)-1] }

// Clear empties the view in place. Backing storage is untouched.
func (v *View[C, T, A]) Clear() { v.data = nil }

// Swap exchanges the two views' headers in O(1).
func (v *View[C, T, A]) Swap(o *View[C, T, A]) { v.data, o.data = o.data, v.data }

// Substr returns the sub-view starting at pos, at most n elements long
// (n < 0 means to the end). pos > Len() is OutOfRange under a checking
// policy; under Relaxed it clamps to an empty tail view.
func (v View[C, T, A]) Substr(pos, n int) (View[C, T, A], error) {
	var a A
	size := len(v.data)
	if err := a.OutOfRange(pos >= 0 && pos <= size, "pos > size"); err != nil {
		return View[C, T, A]{}, err
	}
	pos = min(max(pos, 0), size)
	if rest := size - pos; n < 0 || n > rest {
		n = rest
	}
	return View[C, T, A]{data: v.data[pos : pos+n]}, nil
}

// Equal reports whether o has the same length and, per the traits, the
// same contents. Only Len() elements of either side are inspected, so a
// view sharing a prefix with a longer one is not equal to it.
func (v View[C, T, A]) Equal(o View[C, T, A]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	var t T
	return t.Compare(v.data, o.data) == 0
}

// Compare orders v against o per the traits: negative, zero, positive.
func (v View[C, T, A]) Compare(o View[C, T, A]) int {
	var t T
	return t.Compare(v.data, o.data)
}

// All iterates index/element pairs front to back. Traversal consumes no
// state; ranging again restarts from the front.
func (v View[C, T, A]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Values iterates elements front to back.
func (v View[C, T, A]) Values() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, c := range v.data {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward iterates index/element pairs back to front.
func (v View[C, T, A]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// ToSlice returns an owned, independent copy of the view's elements.
func (v View[C, T, A]) ToSlice() []C {
	c := make([]C, len(v.data))
	copy(c, v.data)
	return c
}

// Append copies the view's elements onto dst, letting the caller choose
// the allocation.
func (v View[C, T, A]) Append(dst []C) []C {
	return append(dst, v.data...)
}

// WriteTo writes exactly Len() elements to s: no terminator, no
// padding.
func (v View[C, T, A]) WriteTo(s Sink[C]) (int, error) {
	return s.Write(v.data)
}

// Text returns an owned string copy of a byte view's contents.
func Text[T Traits[byte], A AssertPolicy](v View[byte, T, A]) string {
	return string(v.data)
}

// UnsafeText aliases the view's storage as a string without copying.
// The result is only valid while the backing storage is live and
// unmodified; prefer Text unless the copy shows up in a profile.
func UnsafeText[T Traits[byte], A AssertPolicy](v View[byte, T, A]) string {
	return common.StringView(v.data)
}
