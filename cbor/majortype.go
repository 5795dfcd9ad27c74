package cbor

// MajorType is the three-bit category in a data item's wire header.
type MajorType byte

const (
	MajorUnsignedInt MajorType = 0
	MajorNegativeInt MajorType = 1
	MajorByteString  MajorType = 2
	MajorTextString  MajorType = 3
	MajorArray       MajorType = 4
	MajorMap         MajorType = 5
	MajorTag         MajorType = 6
	MajorOther       MajorType = 7
)

func (m MajorType) String() string {
	switch m {
	case MajorUnsignedInt:
		return "unsigned"
	case MajorNegativeInt:
		return "negative"
	case MajorByteString:
		return "bytes"
	case MajorTextString:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorOther:
		return "other"
	default:
		return "invalid"
	}
}

// Additional-information values selecting the operand width.
const (
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31
)

// breakByte terminates an indefinite-length aggregate on the wire.
const breakByte = 0xFF
