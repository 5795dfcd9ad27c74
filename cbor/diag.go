package cbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// The Diagnostic methods render RFC 7049 section 6 diagnostic notation.
// A non-negative indent pretty-prints aggregates across lines, indented
// with that many leading tabs; a negative indent keeps everything on one
// line. String is the single-line form.

// wrapTag surrounds a rendered item with its tag annotation.
func wrapTag(tag Tag, body string) string {
	if tag == Untagged {
		return body
	}
	return strconv.FormatInt(int64(tag), 10) + "(" + body + ")"
}

func (i *Integer) Diagnostic(int) string {
	return wrapTag(i.tag, strconv.FormatInt(i.value, 10))
}

func (i *Integer) String() string {
	return i.Diagnostic(-1)
}

func (f *Float) Diagnostic(int) string {
	var body string
	switch {
	case math.IsNaN(f.value):
		body = "NaN"
	case math.IsInf(f.value, 1):
		body = "Infinity"
	case math.IsInf(f.value, -1):
		body = "-Infinity"
	default:
		body = strconv.FormatFloat(f.value, 'g', -1, 64)
		if !strings.ContainsAny(body, ".eE") {
			body += ".0"
		}
	}
	switch f.width {
	case WidthHalf:
		body += "_1"
	case WidthSingle:
		body += "_2"
	default:
		body += "_3"
	}
	return wrapTag(f.tag, body)
}

func (f *Float) String() string {
	return f.Diagnostic(-1)
}

func (b *ByteString) Diagnostic(int) string {
	return wrapTag(b.tag, "h'"+hex.EncodeToString(b.data)+"'")
}

func (b *ByteString) String() string {
	return b.Diagnostic(-1)
}

func (t *TextString) Diagnostic(int) string {
	return wrapTag(t.tag, strconv.Quote(t.value))
}

func (t *TextString) String() string {
	return t.Diagnostic(-1)
}

func (a *Array) Diagnostic(indent int) string {
	if len(a.items) == 0 {
		return wrapTag(a.tag, "[]")
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, it := range a.items {
		if i > 0 {
			sb.WriteByte(',')
			if indent < 0 {
				sb.WriteByte(' ')
			}
		}
		writeNested(&sb, it, indent)
	}
	closeAggregate(&sb, ']', indent)
	return wrapTag(a.tag, sb.String())
}

func (a *Array) String() string {
	return a.Diagnostic(-1)
}

func (m *Map) Diagnostic(indent int) string {
	if len(m.entries) == 0 {
		return wrapTag(m.tag, "{}")
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteByte(',')
			if indent < 0 {
				sb.WriteByte(' ')
			}
		}
		writeNested(&sb, e.key, indent)
		sb.WriteString(": ")
		if indent >= 0 {
			sb.WriteString(e.value.Diagnostic(indent + 1))
		} else {
			sb.WriteString(e.value.Diagnostic(-1))
		}
	}
	closeAggregate(&sb, '}', indent)
	return wrapTag(m.tag, sb.String())
}

func (m *Map) String() string {
	return m.Diagnostic(-1)
}

func (s *Simple) Diagnostic(int) string {
	var body string
	switch s.value {
	case simpleFalse:
		body = "false"
	case simpleTrue:
		body = "true"
	case simpleNull:
		body = "null"
	case simpleUndefined:
		body = "undefined"
	default:
		body = "simple(" + strconv.Itoa(int(s.value)) + ")"
	}
	return wrapTag(s.tag, body)
}

func (s *Simple) String() string {
	return s.Diagnostic(-1)
}

// writeNested writes one aggregate member, on its own indented line when
// pretty-printing.
func writeNested(sb *strings.Builder, it Item, indent int) {
	if indent < 0 {
		sb.WriteString(it.Diagnostic(-1))
		return
	}
	sb.WriteByte('\n')
	writeTabs(sb, indent+1)
	sb.WriteString(it.Diagnostic(indent + 1))
}

func closeAggregate(sb *strings.Builder, closer byte, indent int) {
	if indent >= 0 {
		sb.WriteByte('\n')
		writeTabs(sb, indent)
	}
	sb.WriteByte(closer)
}

func writeTabs(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte('\t')
	}
}
