package cbor

import (
	"math"
	"math/big"
	"net/url"
	"reflect"
	"sort"
)

// FromInterface converts a native Go value into a data item. Supported
// inputs are nil, bool, all integer and float widths, string, []byte,
// *big.Int, *url.URL, existing Items (deep-copied), and slices, arrays and
// maps of supported values. Map entries are emitted in the order of their
// encoded keys so the result is deterministic.
func FromInterface(v interface{}) (Item, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case bool:
		if x {
			return True, nil
		}
		return False, nil
	case int:
		return NewInteger(int64(x)), nil
	case int8:
		return NewInteger(int64(x)), nil
	case int16:
		return NewInteger(int64(x)), nil
	case int32:
		return NewInteger(int64(x)), nil
	case int64:
		return NewInteger(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return NewInteger(int64(x)), nil
	case uint16:
		return NewInteger(int64(x)), nil
	case uint32:
		return NewInteger(int64(x)), nil
	case uint64:
		return fromUint64(x)
	case float32:
		return NewFloat32(x), nil
	case float64:
		return NewFloat64(x), nil
	case string:
		return NewTextString(x), nil
	case []byte:
		return NewByteString(x), nil
	case *big.Int:
		return fromBigInt(x)
	case *url.URL:
		return NewTaggedTextString(x.String(), TagURI)
	case Item:
		return x.Copy(), nil
	}

	return fromReflect(reflect.ValueOf(v))
}

// fromUint64 keeps values beyond the int64 range representable by routing
// them through a positive bignum.
func fromUint64(v uint64) (Item, error) {
	if v <= math.MaxInt64 {
		return NewInteger(int64(v)), nil
	}
	return fromBigInt(new(big.Int).SetUint64(v))
}

// fromBigInt encodes the integer's magnitude as a tagged byte string: tag
// 2 for non-negative values, tag 3 for negative ones.
func fromBigInt(v *big.Int) (Item, error) {
	if v.Sign() >= 0 {
		return NewTaggedByteString(v.Bytes(), TagBignumPos)
	}
	mag := new(big.Int).Neg(v)
	return NewTaggedByteString(mag.Bytes(), TagBignumNeg)
}

func fromReflect(rv reflect.Value) (Item, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			child, err := FromInterface(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr.Add(child)
		}
		return arr, nil

	case reflect.Map:
		type entry struct {
			encoded []byte
			key     Item
			value   Item
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := FromInterface(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			value, err := FromInterface(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			encoded, err := Encode(key)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{encoded, key, value})
		}
		// Go map iteration order is randomized; sort by encoded key so
		// repeated conversions of the same value produce identical items.
		sort.Slice(entries, func(i, j int) bool {
			return string(entries[i].encoded) < string(entries[j].encoded)
		})
		m := NewMap()
		for _, e := range entries {
			m.Put(e.key, e.value)
		}
		return m, nil
	}

	return nil, newConversionError("unsupported value of type %T", rv.Interface())
}

// ToInterface converts a data item into a native Go value. Integers map to
// int64, floats map to float32 or float64 matching their encoded width,
// and well-known tags are resolved (bignums to *big.Int, URIs to
// *url.URL). Map keys that have no hashable Go representation fall back to
// their diagnostic notation string.
func ToInterface(item Item) (interface{}, error) {
	switch v := item.(type) {
	case *Integer:
		return v.Value(), nil

	case *Float:
		if v.Width() == WidthDouble {
			return v.Value(), nil
		}
		return v.Float32(), nil

	case *ByteString:
		switch v.Tag() {
		case TagBignumPos, TagBignumNeg:
			return AsBigInt(v)
		}
		return v.Bytes(), nil

	case *TextString:
		if v.Tag() == TagURI {
			return AsURL(v)
		}
		return v.Value(), nil

	case *Array:
		out := make([]interface{}, 0, v.Len())
		for _, it := range v.Items() {
			converted, err := ToInterface(it)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil

	case *Map:
		out := make(map[interface{}]interface{}, v.Len())
		for _, e := range v.Entries() {
			key, err := ToInterface(e.Key)
			if err != nil {
				return nil, err
			}
			if !hashableKey(key) {
				key = e.Key.String()
			}
			value, err := ToInterface(e.Value)
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil

	case *Simple:
		switch v.Value() {
		case simpleFalse:
			return false, nil
		case simpleTrue:
			return true, nil
		case simpleNull, simpleUndefined:
			return nil, nil
		}
		return nil, newConversionError("simple(%d) has no native representation", v.Value())
	}

	return nil, newConversionError("cannot convert item of type %T", item)
}

// hashableKey reports whether v can serve as a Go map key.
func hashableKey(v interface{}) bool {
	switch v.(type) {
	case nil, bool, int64, float32, float64, string:
		return true
	case *big.Int, *url.URL:
		return true
	}
	return false
}

// StringMap converts the map into a map[string]interface{}. Every key must
// be an untagged text string.
func (m *Map) StringMap() (map[string]interface{}, error) {
	out := make(map[string]interface{}, m.Len())
	for _, e := range m.entries {
		key, ok := e.key.(*TextString)
		if !ok || key.tag != Untagged {
			return nil, newConversionError("map key %s is not a plain text string", e.key)
		}
		value, err := ToInterface(e.value)
		if err != nil {
			return nil, err
		}
		out[key.value] = value
	}
	return out, nil
}

// AsBigInt interprets a bignum-tagged byte string as an arbitrary
// precision integer. The bytes are the big-endian magnitude; tag 3 negates
// it.
func AsBigInt(item Item) (*big.Int, error) {
	b, ok := item.(*ByteString)
	if !ok {
		return nil, newConversionError("bignum must be a byte string, got %T", item)
	}
	v := new(big.Int).SetBytes(b.data)
	switch b.tag {
	case TagBignumPos:
		return v, nil
	case TagBignumNeg:
		return v.Neg(v), nil
	}
	return nil, newConversionError("byte string tag %d is not a bignum tag", b.tag)
}

// AsURL interprets a URI-tagged text string as a parsed URL.
func AsURL(item Item) (*url.URL, error) {
	t, ok := item.(*TextString)
	if !ok {
		return nil, newConversionError("URI must be a text string, got %T", item)
	}
	if t.tag != TagURI {
		return nil, newConversionError("text string tag %d is not the URI tag", t.tag)
	}
	u, err := url.Parse(t.value)
	if err != nil {
		return nil, wrapConversionError(err, "malformed URI")
	}
	return u, nil
}

// EmbedItem wraps an item's encoded form in a byte string carrying the
// embedded-item tag.
func EmbedItem(item Item) (*ByteString, error) {
	encoded, err := Encode(item)
	if err != nil {
		return nil, err
	}
	return NewTaggedByteString(encoded, TagCBORDataItem)
}

// EmbeddedItem decodes the data item carried by an embedded-item tagged
// byte string.
func EmbeddedItem(item Item) (Item, error) {
	b, ok := item.(*ByteString)
	if !ok || b.tag != TagCBORDataItem {
		return nil, newConversionError("item does not carry an embedded data item")
	}
	return Decode(b.data)
}
