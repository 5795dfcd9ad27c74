package cbor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrExhausted is returned by Reader.ReadItem when the reader's declared
// item count has been consumed, or when an unbounded reader has reached the
// end of its input.
var ErrExhausted = errors.New("cbor: no remaining data items")

// ParseError reports malformed or truncated CBOR input. Every decode-side
// failure is surfaced as a ParseError; the underlying cause, if any, is
// available through Unwrap.
type ParseError struct {
	msg   string
	cause error
}

func newParseError(format string, args ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

func wrapParseError(cause error, format string, args ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("cbor: %s: %v", e.msg, e.cause)
	}
	return "cbor: " + e.msg
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ConversionError reports a failed conversion between the item model and
// host values at the object boundary (wrong item kind, numeric range
// exceeded, unsupported tag/value combination).
type ConversionError struct {
	msg   string
	cause error
}

func newConversionError(format string, args ...interface{}) *ConversionError {
	return &ConversionError{msg: fmt.Sprintf(format, args...)}
}

func wrapConversionError(cause error, format string, args ...interface{}) *ConversionError {
	return &ConversionError{msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *ConversionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("cbor: %s: %v", e.msg, e.cause)
	}
	return "cbor: " + e.msg
}

func (e *ConversionError) Unwrap() error {
	return e.cause
}

// IsConversionError reports whether err is (or wraps) a ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}
