package classfile

import (
	"encoding/binary"
	"fmt"
)

// Cursor is a forward-only big-endian reader over a borrowed byte slice.
// A failed read leaves the offset where it was.
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

func (c *Cursor) Offset() int    { return c.off }
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// ReadPastEndError reports a read of Tried bytes with only Left bytes remaining.
type ReadPastEndError struct {
	Tried int
	Left  int
}

func (e *ReadPastEndError) Error() string {
	return fmt.Sprintf("read past end: tried to read %d bytes with %d left", e.Tried, e.Left)
}

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &ReadPastEndError{Tried: n, Left: c.Remaining()}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *Cursor) ReadU1() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU2() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Cursor) ReadU4() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadBytes returns a copy of the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
