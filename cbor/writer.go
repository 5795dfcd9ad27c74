package cbor

import (
	"math"

	"github.com/pkg/errors"

	"cborg/half"
	"cborg/stream"
)

// Writer encodes data items to a Sink. All output uses definite lengths
// with the shortest operand encoding that fits the value.
type Writer struct {
	sink stream.Sink
}

func NewWriter(sink stream.Sink) *Writer {
	return &Writer{sink: sink}
}

// BytesWritten reports the number of bytes emitted so far.
func (w *Writer) BytesWritten() int {
	return w.sink.Length()
}

// WriteItem encodes a single data item, its tag included.
func (w *Writer) WriteItem(item Item) error {
	if item == nil {
		return errors.New("cbor: cannot encode nil item")
	}
	if tag := item.Tag(); tag != Untagged {
		if err := w.writeTypedOperand(MajorTag, uint64(tag)); err != nil {
			return err
		}
	}

	switch v := item.(type) {
	case *Integer:
		var operand uint64
		if v.value < 0 {
			operand = uint64(-1 - v.value)
		} else {
			operand = uint64(v.value)
		}
		return w.writeTypedOperand(v.MajorType(), operand)

	case *Float:
		if err := w.sink.Put(byte(MajorOther)<<5 | byte(v.width)); err != nil {
			return err
		}
		switch v.width {
		case WidthHalf:
			return w.sink.PutUint16(half.Encode(float32(v.value)))
		case WidthSingle:
			return w.sink.PutUint32(math.Float32bits(float32(v.value)))
		default:
			return w.sink.PutUint64(math.Float64bits(v.value))
		}

	case *ByteString:
		if err := w.writeTypedOperand(MajorByteString, uint64(len(v.data))); err != nil {
			return err
		}
		return w.sink.PutBytes(v.data)

	case *TextString:
		if err := w.writeTypedOperand(MajorTextString, uint64(len(v.raw))); err != nil {
			return err
		}
		return w.sink.PutBytes(v.raw)

	case *Array:
		if err := w.writeTypedOperand(MajorArray, uint64(len(v.items))); err != nil {
			return err
		}
		for _, child := range v.items {
			if err := w.WriteItem(child); err != nil {
				return err
			}
		}
		return nil

	case *Map:
		if err := w.writeTypedOperand(MajorMap, uint64(len(v.entries))); err != nil {
			return err
		}
		for _, e := range v.entries {
			if err := w.WriteItem(e.key); err != nil {
				return err
			}
			if err := w.WriteItem(e.value); err != nil {
				return err
			}
		}
		return nil

	case *Simple:
		return w.writeTypedOperand(MajorOther, uint64(v.value))
	}

	return errors.Errorf("cbor: cannot encode item of type %T", item)
}

// writeTypedOperand emits a header byte for the given major type followed
// by the shortest operand encoding that holds the value.
func (w *Writer) writeTypedOperand(major MajorType, operand uint64) error {
	hdr := byte(major) << 5
	switch {
	case operand < uint64(addInfoUint8):
		return w.sink.Put(hdr | byte(operand))
	case operand <= math.MaxUint8:
		if err := w.sink.Put(hdr | addInfoUint8); err != nil {
			return err
		}
		return w.sink.Put(byte(operand))
	case operand <= math.MaxUint16:
		if err := w.sink.Put(hdr | addInfoUint16); err != nil {
			return err
		}
		return w.sink.PutUint16(uint16(operand))
	case operand <= math.MaxUint32:
		if err := w.sink.Put(hdr | addInfoUint32); err != nil {
			return err
		}
		return w.sink.PutUint32(uint32(operand))
	default:
		if err := w.sink.Put(hdr | addInfoUint64); err != nil {
			return err
		}
		return w.sink.PutUint64(operand)
	}
}

// Length returns the exact number of bytes the item will occupy when
// encoded.
func Length(item Item) int {
	c := stream.NewCounter()
	// The counting sink never fails.
	if err := NewWriter(c).WriteItem(item); err != nil {
		return 0
	}
	return c.Length()
}
