package cbor

import (
	"encoding/base64"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// quoteJSON renders s as a JSON string literal.
func quoteJSON(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail.
		return `""`
	}
	return string(out)
}

func (i *Integer) IsValidJSON() bool {
	return true
}

func (i *Integer) JSONString() string {
	return strconv.FormatInt(i.value, 10)
}

func (f *Float) IsValidJSON() bool {
	return !math.IsNaN(f.value) && !math.IsInf(f.value, 0)
}

func (f *Float) JSONString() string {
	if !f.IsValidJSON() {
		// JSON has no representation for non-finite values.
		return "null"
	}
	out := strconv.FormatFloat(f.value, 'g', -1, 64)
	// Integral values still need a decimal point or exponent to parse as
	// a JSON number rather than look like an integer of different type.
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

// IsValidJSON reports whether the byte string's tag names an expected text
// encoding. Raw binary has no JSON representation.
func (b *ByteString) IsValidJSON() bool {
	switch b.tag {
	case TagExpectedBase16, TagExpectedBase64, TagExpectedBase64URL:
		return true
	}
	return false
}

// JSONString renders the bytes in the encoding the tag asks for, falling
// back to base64url for untagged binary.
func (b *ByteString) JSONString() string {
	switch b.tag {
	case TagExpectedBase16:
		return quoteJSON(hex.EncodeToString(b.data))
	case TagExpectedBase64:
		return quoteJSON(base64.StdEncoding.EncodeToString(b.data))
	default:
		return quoteJSON(base64.RawURLEncoding.EncodeToString(b.data))
	}
}

func (t *TextString) IsValidJSON() bool {
	return true
}

func (t *TextString) JSONString() string {
	return quoteJSON(t.value)
}

func (a *Array) IsValidJSON() bool {
	for _, it := range a.items {
		if !it.IsValidJSON() {
			return false
		}
	}
	return true
}

func (a *Array) JSONString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range a.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(it.JSONString())
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsValidJSON requires every key to be an untagged text string and every
// value to be representable.
func (m *Map) IsValidJSON() bool {
	for _, e := range m.entries {
		if k, ok := e.key.(*TextString); !ok || k.tag != Untagged {
			return false
		}
		if !e.value.IsValidJSON() {
			return false
		}
	}
	return true
}

// JSONString renders the map as a JSON object. Non-text keys are rendered
// as their quoted diagnostic notation so the output stays parseable.
func (m *Map) JSONString() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		if k, ok := e.key.(*TextString); ok && k.tag == Untagged {
			sb.WriteString(k.JSONString())
		} else {
			sb.WriteString(quoteJSON(e.key.String()))
		}
		sb.WriteByte(':')
		sb.WriteString(e.value.JSONString())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Simple) IsValidJSON() bool {
	switch s.value {
	case simpleFalse, simpleTrue, simpleNull:
		return true
	}
	return false
}

func (s *Simple) JSONString() string {
	switch s.value {
	case simpleFalse:
		return "false"
	case simpleTrue:
		return "true"
	case simpleNull:
		return "null"
	case simpleUndefined:
		return `"undefined"`
	default:
		return quoteJSON("simple(" + strconv.Itoa(int(s.value)) + ")")
	}
}
