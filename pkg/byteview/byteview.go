// Package byteview provides an immutable owned byte container: the
// natural destination for a view's owned copy, and an owner a view can
// borrow from without the copy.
package byteview

import (
	"github.com/hirthwork/substring"
)

// ByteView holds an immutable copy of some bytes. The zero value is
// empty.
type ByteView struct {
	b []byte
}

// Of copies b into a new ByteView, so later writes to b are not
// observed.
func Of(b []byte) ByteView {
	c := make([]byte, len(b))
	copy(c, b)
	return ByteView{b: c}
}

// OfString copies s into a new ByteView.
func OfString(s string) ByteView {
	return ByteView{b: []byte(s)}
}

// OfView copies a view's contents into a new ByteView, giving them a
// lifetime independent of the view's backing storage.
func OfView[T substring.Traits[byte], A substring.AssertPolicy](v substring.View[byte, T, A]) ByteView {
	return ByteView{b: v.ToSlice()}
}

// Len reports the number of bytes held.
func (v ByteView) Len() int { return len(v.b) }

// ByteSlice returns a defensive copy of the data.
func (v ByteView) ByteSlice() []byte {
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return c
}

// String returns the data as a string.
func (v ByteView) String() string { return string(v.b) }

// Bytes returns the held buffer itself, read-only by contract. It makes
// ByteView a substring.Owner[byte]; the container never mutates, so
// borrowed views stay valid as long as the ByteView is reachable.
func (v ByteView) Bytes() []byte { return v.b }

// View borrows the buffer as a checked byte view, no copy.
func (v ByteView) View() substring.String {
	return substring.FromOwner[byte, substring.ByteTraits, substring.Strict](v)
}

// Slice returns a checked sub-view over [pos, pos+n); n < 0 means to
// the end. pos past the end reports substring.ErrOutOfRange.
func (v ByteView) Slice(pos, n int) (substring.String, error) {
	return v.View().Substr(pos, n)
}
