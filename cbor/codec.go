package cbor

import (
	"bytes"

	"cborg/stream"
)

// Encode returns the encoded form of item. The output buffer is presized
// to the item's exact encoded length.
func Encode(item Item) ([]byte, error) {
	buf := stream.NewBufferSize(Length(item))
	if err := NewWriter(buf).WriteItem(item); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo encodes item into the given sink.
func EncodeTo(item Item, sink stream.Sink) error {
	return NewWriter(sink).WriteItem(item)
}

// Decode parses data as exactly one data item. Trailing bytes after the
// item are an error.
func Decode(data []byte) (Item, error) {
	r := NewReaderCount(bytes.NewReader(data), 1)
	item, err := r.ReadItem()
	if err != nil {
		return nil, err
	}
	if n := r.BytesParsed(); n != int64(len(data)) {
		return nil, newParseError("%d unparsed bytes after data item", int64(len(data))-n)
	}
	return item, nil
}

// DecodeMap parses data as exactly one data item and requires it to be a
// map.
func DecodeMap(data []byte) (*Map, error) {
	item, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m, ok := item.(*Map)
	if !ok {
		return nil, newParseError("expected map, got %s item", item.MajorType())
	}
	return m, nil
}

// DecodeArray parses data as exactly one data item and requires it to be
// an array.
func DecodeArray(data []byte) (*Array, error) {
	item, err := Decode(data)
	if err != nil {
		return nil, err
	}
	arr, ok := item.(*Array)
	if !ok {
		return nil, newParseError("expected array, got %s item", item.MajorType())
	}
	return arr, nil
}
