package cbor

import (
	"io"
	"math"

	"cborg/half"
	"cborg/log"
	"cborg/stream"
)

// maxStringLen bounds single definite-length string allocations. Declared
// lengths beyond this cannot be legitimate on inputs we can hold in memory
// and are rejected before allocating.
const maxStringLen = math.MaxInt32

// Reader decodes a stream of CBOR data items from a byte source. A Reader
// is single-use against one input and is not safe for concurrent use.
//
// A Reader constructed with NewReaderCount stops after the declared number
// of top-level items; one constructed with NewReader decodes until the end
// of input.
type Reader struct {
	cur        *stream.Cursor
	remaining  int
	pendingTag Tag
	maxDepth   int
	lgr        log.Logger
}

// NewReader returns a Reader that decodes top-level items until the end of
// input.
func NewReader(r io.Reader) *Reader {
	return NewReaderCount(r, -1)
}

// NewReaderCount returns a Reader that decodes exactly count top-level
// items. A negative count means unbounded.
func NewReaderCount(r io.Reader, count int) *Reader {
	return &Reader{
		cur:        stream.NewCursor(r),
		remaining:  count,
		pendingTag: Untagged,
		lgr:        log.WithComponent("cbor-reader"),
	}
}

// SetMaxDepth bounds the nesting depth (tags, arrays, maps and string
// chunks all count) the Reader will follow before failing with a
// ParseError. Zero, the default, means unbounded, which matches the wire
// format's own lack of a bound; adversarial input can then recurse
// arbitrarily deep.
func (r *Reader) SetMaxDepth(n int) {
	r.maxDepth = n
}

// BytesParsed reports the number of input bytes consumed so far.
func (r *Reader) BytesParsed() int64 {
	return r.cur.BytesConsumed()
}

// HasMore reports whether another top-level item is available. For a
// counted Reader this is the remaining count; otherwise the Reader peeks
// for end-of-input or a break byte. Read errors other than a clean EOF
// report true so that ReadItem surfaces them.
func (r *Reader) HasMore() bool {
	if r.remaining >= 0 {
		return r.remaining != 0
	}
	b, err := r.cur.Peek()
	if err != nil {
		return err != io.EOF
	}
	return b != breakByte
}

// ReadItem decodes and returns the next top-level data item. Calling it
// past exhaustion fails with ErrExhausted; all other failures are
// ParseErrors.
func (r *Reader) ReadItem() (Item, error) {
	if !r.HasMore() {
		return nil, ErrExhausted
	}
	item, err := r.readItem(0)
	if err != nil {
		return nil, err
	}
	if r.remaining > 0 {
		r.remaining--
	}
	return item, nil
}

func (r *Reader) readItem(depth int) (Item, error) {
	if r.maxDepth > 0 && depth > r.maxDepth {
		return nil, newParseError("nesting depth exceeds limit of %d", r.maxDepth)
	}

	tag := r.pendingTag
	r.pendingTag = Untagged

	hdr, err := r.cur.Next()
	if err != nil {
		return nil, wrapParseError(err, "data is truncated or corrupt")
	}
	major := MajorType(hdr >> 5)
	info := hdr & 0x1f

	var operand uint64
	indefinite := false
	switch {
	case info < addInfoUint8:
		operand = uint64(info)

	case info == addInfoUint8:
		b, err := r.cur.Next()
		if err != nil {
			return nil, wrapParseError(err, "data is truncated or corrupt")
		}
		operand = uint64(b)

	case info == addInfoUint16:
		v, err := r.cur.NextUint16()
		if err != nil {
			return nil, wrapParseError(err, "data is truncated or corrupt")
		}
		operand = uint64(v)

	case info == addInfoUint32:
		v, err := r.cur.NextUint32()
		if err != nil {
			return nil, wrapParseError(err, "data is truncated or corrupt")
		}
		operand = uint64(v)

	case info == addInfoUint64:
		v, err := r.cur.NextUint64()
		if err != nil {
			return nil, wrapParseError(err, "data is truncated or corrupt")
		}
		// Operands with the top bit set exceed the signed range the
		// item model carries. For a tag the annotation is dropped and
		// decoding continues; anywhere else this is fatal.
		if v>>63 != 0 {
			if major != MajorTag {
				return nil, newParseError("additional data value too large: %#x", v)
			}
			r.lgr.Warn("ignoring out-of-range tag", "operand", v)
			return r.readItem(depth + 1)
		}
		operand = v

	case info == addInfoIndefinite:
		indefinite = true

	default:
		// 28, 29 and 30 are reserved.
		return nil, newParseError("undefined additional info value %d for major type %d", info, major)
	}

	switch major {
	case MajorTag:
		// The enclosing pending tag, if any, is dropped here: only the
		// innermost of stacked tags survives. A tag header with no
		// operand leaves the next item untagged.
		if indefinite {
			return r.readItem(depth + 1)
		}
		if t := Tag(operand); t.IsValid() {
			r.pendingTag = t
		} else {
			r.lgr.Warn("ignoring invalid tag", "tag", operand)
		}
		return r.readItem(depth + 1)

	case MajorUnsignedInt, MajorNegativeInt:
		if indefinite {
			return nil, newParseError("indefinite length is not valid for %s items", major)
		}
		if major == MajorUnsignedInt {
			return decodedInteger(int64(operand), tag, MajorUnsignedInt), nil
		}
		return decodedInteger(-1-int64(operand), tag, MajorNegativeInt), nil

	case MajorByteString, MajorTextString:
		var raw []byte
		if indefinite {
			raw, err = r.readChunkedString(major, depth)
			if err != nil {
				return nil, err
			}
		} else {
			if operand > maxStringLen {
				return nil, newParseError("declared string length %d too large", operand)
			}
			raw, err = r.cur.NextBytes(int(operand))
			if err != nil {
				return nil, wrapParseError(err, "data is truncated or corrupt")
			}
		}
		if major == MajorByteString {
			return newDecodedByteString(raw, tag), nil
		}
		return newDecodedTextString(raw, tag), nil

	case MajorArray:
		arr := &Array{tag: tag}
		if indefinite {
			for {
				more, err := r.moreBeforeBreak()
				if err != nil {
					return nil, err
				}
				if !more {
					break
				}
				child, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				arr.Add(child)
			}
		} else {
			if operand > maxStringLen {
				return nil, newParseError("declared array length %d too large", operand)
			}
			for i := uint64(0); i < operand; i++ {
				child, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				arr.Add(child)
			}
		}
		return arr, nil

	case MajorMap:
		m := NewMap()
		m.tag = tag
		if indefinite {
			for {
				more, err := r.moreBeforeBreak()
				if err != nil {
					return nil, err
				}
				if !more {
					break
				}
				key, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				value, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				m.Put(key, value)
			}
		} else {
			if operand > maxStringLen {
				return nil, newParseError("declared map length %d too large", operand)
			}
			for i := uint64(0); i < operand; i++ {
				key, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				value, err := r.readItem(depth + 1)
				if err != nil {
					return nil, err
				}
				m.Put(key, value)
			}
		}
		return m, nil

	case MajorOther:
		if indefinite {
			return nil, newParseError("unexpected break byte")
		}
		switch info {
		case addInfoUint16:
			return decodedFloat(float64(half.Decode(uint16(operand))), WidthHalf, tag), nil
		case addInfoUint32:
			return decodedFloat(float64(math.Float32frombits(uint32(operand))), WidthSingle, tag), nil
		case addInfoUint64:
			return decodedFloat(math.Float64frombits(operand), WidthDouble, tag), nil
		default:
			s, err := NewTaggedSimple(uint8(operand), tag)
			if err != nil {
				return nil, wrapParseError(err, "invalid simple value")
			}
			return s, nil
		}
	}

	return nil, newParseError("invalid major type value %d", major)
}

// moreBeforeBreak peeks for the break byte terminating an indefinite
// aggregate, consuming it when found. A clean EOF here means the break is
// missing.
func (r *Reader) moreBeforeBreak() (bool, error) {
	b, err := r.cur.Peek()
	if err == io.EOF {
		return false, newParseError("missing break")
	}
	if err != nil {
		return false, wrapParseError(err, "data is truncated or corrupt")
	}
	if b != breakByte {
		return true, nil
	}
	if _, err := r.cur.Next(); err != nil {
		return false, wrapParseError(err, "data is truncated or corrupt")
	}
	return false, nil
}

// readChunkedString decodes the chunks of an indefinite-length string.
// Every chunk must be a definite-length string of the same major type; the
// chunks' raw bytes are concatenated in order.
func (r *Reader) readChunkedString(major MajorType, depth int) ([]byte, error) {
	var out []byte
	for {
		more, err := r.moreBeforeBreak()
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		hdr, err := r.cur.Peek()
		if err != nil {
			return nil, wrapParseError(err, "data is truncated or corrupt")
		}
		if MajorType(hdr>>5) != major {
			return nil, newParseError("unexpected major type in %s string stream", major)
		}
		if hdr&0x1f == addInfoIndefinite {
			return nil, newParseError("nested indefinite chunk in %s string stream", major)
		}

		chunk, err := r.readItem(depth + 1)
		if err != nil {
			return nil, err
		}
		switch c := chunk.(type) {
		case *ByteString:
			out = append(out, c.data...)
		case *TextString:
			out = append(out, c.raw...)
		default:
			return nil, newParseError("unexpected item in %s string stream", major)
		}
	}
}

func decodedInteger(value int64, tag Tag, major MajorType) *Integer {
	return &Integer{value: value, tag: tag, major: major, hasMajor: true}
}

func decodedFloat(value float64, width FloatWidth, tag Tag) *Float {
	return &Float{value: value, width: width, tag: tag}
}
