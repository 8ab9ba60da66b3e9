// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// Cursor is a read-only view into a byte buffer with a monotonic position. It
// is the canonical abstraction that every decode path advances through: the
// fixed cursor walks a composite's header, the variable cursor walks its
// dynamic tail, and sub-slicing a cursor for a nested element never copies.
//
// A Cursor never seeks backwards; this mirrors §5's ordering guarantee that
// decode reads input strictly left-to-right.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential, non-copying reads starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining reports how many unread bytes are left on the cursor.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Chunk returns a read-only view of the next n unread bytes without advancing
// the cursor. It fails with ErrInvalidByteLength if fewer than n bytes remain.
func (c *Cursor) Chunk(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &InvalidByteLengthError{Len: c.Remaining(), Expected: n}
	}
	return c.buf[c.pos : c.pos+n], nil
}

// Advance moves the cursor forward by n bytes. It fails with
// ErrInvalidByteLength if fewer than n bytes remain.
func (c *Cursor) Advance(n int) error {
	if c.Remaining() < n {
		return &InvalidByteLengthError{Len: c.Remaining(), Expected: n}
	}
	c.pos += n
	return nil
}

// Take returns the next n unread bytes and advances past them in one step.
func (c *Cursor) Take(n int) ([]byte, error) {
	b, err := c.Chunk(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// Rest returns every remaining unread byte and advances the cursor to the end.
func (c *Cursor) Rest() []byte {
	b := c.buf[c.pos:]
	c.pos = len(c.buf)
	return b
}

// Sub carves out a non-overlapping, independently advancing Cursor over the
// next n unread bytes without copying the backing array.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	b, err := c.Take(n)
	if err != nil {
		return nil, err
	}
	return NewCursor(b), nil
}
