// Package half converts between IEEE-754 binary16 bit patterns and
// binary32 floats. CBOR uses the binary16 encoding for two-byte floats, but
// neither Go nor its standard library has a native half type, so the
// conversions are done directly on the bit patterns.
package half

import "math"

const (
	// MaxValue is the largest finite value representable as a half.
	MaxValue float32 = 65504.0

	// MinNormal is the smallest positive normal half value.
	MinNormal float32 = 0.000061035156

	// MinValue is the smallest positive subnormal half value.
	MinValue float32 = 0.000000059604645

	// Epsilon is the difference between 1.0 and the next representable
	// half value.
	Epsilon float32 = 0.0009765625
)

const (
	signShift16 = 15
	signMask16  = 0x8000
	expShift16  = 10
	expMask16   = 0x1f
	mantMask16  = 0x3ff
	expBias16   = 15

	signShift32 = 31
	expShift32  = 23
	expMask32   = 0xff
	mantMask32  = 0x7fffff
	expBias32   = 127

	// Bit pattern of 2^-1 in binary32. Adding a 10-bit subnormal half
	// mantissa to this and subtracting 0.5 yields the subnormal's value
	// exactly, letting the FPU do the normalization.
	denormMagic = 126 << expShift32
)

var denormBase = math.Float32frombits(denormMagic)

// Decode expands a binary16 bit pattern into the binary32 value it
// represents. The conversion is exact: every half value is representable as
// a float32.
func Decode(bits uint16) float32 {
	s := uint32(bits) & signMask16
	e := uint32(bits>>expShift16) & expMask16
	m := uint32(bits) & mantMask16

	if e == 0 {
		if m == 0 {
			// Signed zero.
			return math.Float32frombits(s << 16)
		}
		o := math.Float32frombits(denormMagic+m) - denormBase
		if s != 0 {
			return -o
		}
		return o
	}

	var outE uint32
	if e == expMask16 {
		outE = expMask32 // infinity or NaN
	} else {
		outE = e - expBias16 + expBias32
	}
	return math.Float32frombits(s<<16 | outE<<expShift32 | m<<13)
}

// Encode contracts a binary32 value into the nearest binary16 bit pattern.
// Values beyond the half range saturate to signed infinity; values below
// the smallest subnormal flush to signed zero. Rounding is to nearest, with
// mantissa overflow carrying into the exponent.
func Encode(f float32) uint16 {
	bits := math.Float32bits(f)
	s := bits >> signShift32
	e := int32(bits>>expShift32) & expMask32
	m := bits & mantMask32

	var outE, outM uint32

	if e == expMask32 {
		// Infinity or NaN.
		outE = expMask16
		if m != 0 {
			outM = 0x200
		}
	} else {
		e = e - expBias32 + expBias16
		switch {
		case e >= expMask16:
			// Finite overflow: saturate to signed infinity.
			outE = expMask16

		case e <= 0:
			if e >= -10 {
				// Normal float32 below the half normal range
				// becomes a subnormal half.
				sub := (m | (mantMask32 + 1)) >> uint32(1-e)
				if sub&0x1000 != 0 {
					sub += 0x2000
				}
				outM = sub >> 13
			}
			// Below that, flush to signed zero.

		default:
			outE = uint32(e)
			outM = m >> 13
			if m&0x1000 != 0 {
				// Round up; a mantissa overflow here carries
				// into the exponent, which is the correct
				// next representable value.
				out := (outE<<expShift16 | outM) + 1
				return uint16(out | s<<signShift16)
			}
		}
	}

	return uint16(s<<signShift16 | outE<<expShift16 | outM)
}
