// Package stream provides the byte-level primitives the CBOR codec is built
// on: a forward-only cursor with one byte of lookahead on the decode side,
// and a pluggable sink on the encode side.
package stream

import (
	"encoding/binary"
	"io"
)

// Cursor reads bytes sequentially from an io.Reader. It supports peeking at
// the next byte without consuming it and keeps a running count of consumed
// bytes. A Cursor is single-use and not safe for concurrent use.
type Cursor struct {
	r        io.Reader
	peeked   byte
	didPeek  bool
	consumed int64
	scratch  [8]byte
}

func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// Peek returns the next byte without consuming it. At end of input it
// returns io.EOF; the byte is only counted once consumed by Next or
// NextBytes.
func (c *Cursor) Peek() (byte, error) {
	if c.didPeek {
		return c.peeked, nil
	}
	if _, err := io.ReadFull(c.r, c.scratch[:1]); err != nil {
		return 0, err
	}
	c.peeked = c.scratch[0]
	c.didPeek = true
	return c.peeked, nil
}

// Next consumes and returns one byte. At end of input it returns io.EOF.
func (c *Cursor) Next() (byte, error) {
	if c.didPeek {
		c.didPeek = false
		c.consumed++
		return c.peeked, nil
	}
	if _, err := io.ReadFull(c.r, c.scratch[:1]); err != nil {
		return 0, err
	}
	c.consumed++
	return c.scratch[0], nil
}

// NextBytes consumes exactly n bytes and returns them in a freshly
// allocated slice. A short read yields io.ErrUnexpectedEOF (or io.EOF if
// nothing was read).
func (c *Cursor) NextBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	off := 0
	if c.didPeek && n > 0 {
		buf[0] = c.peeked
		c.didPeek = false
		off = 1
	}
	if _, err := io.ReadFull(c.r, buf[off:]); err != nil {
		if err == io.EOF && off > 0 {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	c.consumed += int64(n)
	return buf, nil
}

func (c *Cursor) NextUint16() (uint16, error) {
	b, err := c.NextBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Cursor) NextUint32() (uint32, error) {
	b, err := c.NextBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Cursor) NextUint64() (uint64, error) {
	b, err := c.NextBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// BytesConsumed reports how many bytes have been consumed so far. Peeked
// but unconsumed bytes are not counted.
func (c *Cursor) BytesConsumed() int64 {
	return c.consumed
}
