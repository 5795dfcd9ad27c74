package stream

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ErrOverflow is returned by a FixedBuffer when a write would exceed its
// capacity.
var ErrOverflow = errors.New("stream: sink capacity exceeded")

// Sink receives encoded bytes. Multi-byte values are written big-endian.
type Sink interface {
	Put(b byte) error
	PutUint16(v uint16) error
	PutUint32(v uint32) error
	PutUint64(v uint64) error
	PutBytes(p []byte) error

	// Length reports the number of bytes written so far.
	Length() int
}

// Buffer is a growable in-memory Sink.
type Buffer struct {
	buf []byte
}

var _ Sink = (*Buffer)(nil)

func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferSize returns a Buffer presized to hold n bytes without
// reallocating.
func NewBufferSize(n int) *Buffer {
	return &Buffer{buf: make([]byte, 0, n)}
}

func (b *Buffer) Put(x byte) error {
	b.buf = append(b.buf, x)
	return nil
}

func (b *Buffer) PutUint16(v uint16) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

func (b *Buffer) PutUint32(v uint32) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

func (b *Buffer) PutUint64(v uint64) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return nil
}

func (b *Buffer) PutBytes(p []byte) error {
	b.buf = append(b.buf, p...)
	return nil
}

func (b *Buffer) Length() int {
	return len(b.buf)
}

// Bytes returns the written bytes. The slice is owned by the Buffer and
// valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// FixedBuffer is a Sink over a caller-supplied byte slice. Writes that
// would exceed the slice fail with ErrOverflow.
type FixedBuffer struct {
	buf []byte
	n   int
}

var _ Sink = (*FixedBuffer)(nil)

func NewFixedBuffer(buf []byte) *FixedBuffer {
	return &FixedBuffer{buf: buf}
}

func (f *FixedBuffer) put(p []byte) error {
	if f.n+len(p) > len(f.buf) {
		return ErrOverflow
	}
	copy(f.buf[f.n:], p)
	f.n += len(p)
	return nil
}

func (f *FixedBuffer) Put(x byte) error {
	return f.put([]byte{x})
}

func (f *FixedBuffer) PutUint16(v uint16) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return f.put(tmp[:])
}

func (f *FixedBuffer) PutUint32(v uint32) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return f.put(tmp[:])
}

func (f *FixedBuffer) PutUint64(v uint64) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return f.put(tmp[:])
}

func (f *FixedBuffer) PutBytes(p []byte) error {
	return f.put(p)
}

func (f *FixedBuffer) Length() int {
	return f.n
}

// Bytes returns the written prefix of the underlying slice.
func (f *FixedBuffer) Bytes() []byte {
	return f.buf[:f.n]
}

// Counter is a Sink that discards all bytes and only counts them. It is
// used to compute exact encoded lengths without allocating.
type Counter struct {
	n int
}

var _ Sink = (*Counter)(nil)

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Put(byte) error          { c.n++; return nil }
func (c *Counter) PutUint16(uint16) error  { c.n += 2; return nil }
func (c *Counter) PutUint32(uint32) error  { c.n += 4; return nil }
func (c *Counter) PutUint64(uint64) error  { c.n += 8; return nil }
func (c *Counter) PutBytes(p []byte) error { c.n += len(p); return nil }
func (c *Counter) Length() int             { return c.n }

// WriterSink forwards written bytes to an io.Writer. Writer errors
// propagate to the caller unchanged.
type WriterSink struct {
	w io.Writer
	n int
}

var _ Sink = (*WriterSink)(nil)

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) put(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return err
	}
	s.n += len(p)
	return nil
}

func (s *WriterSink) Put(x byte) error {
	return s.put([]byte{x})
}

func (s *WriterSink) PutUint16(v uint16) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return s.put(tmp[:])
}

func (s *WriterSink) PutUint32(v uint32) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return s.put(tmp[:])
}

func (s *WriterSink) PutUint64(v uint64) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return s.put(tmp[:])
}

func (s *WriterSink) PutBytes(p []byte) error {
	return s.put(p)
}

func (s *WriterSink) Length() int {
	return s.n
}
