package mysql

import (
	"encoding/binary"
	"math"

	"github.com/pingcap/errors"
)

// DecodeFixedValue wraps the raw bytes of a fixed-width column, as found in a
// rows event, into the FieldValue its column alias describes. It returns the
// number of bytes consumed. Length-prefixed and decimal columns are left to
// the event parser.
func DecodeFixedValue(tp byte, meta uint16, data []byte) (v FieldValue, n int, err error) {
	n, err = fixedValueLength(tp, meta)
	if err != nil {
		return v, 0, errors.Trace(err)
	}
	if len(data) < n {
		return v, 0, errors.Annotatef(ErrShortBuffer, "type %d needs %d bytes, have %d", tp, n, len(data))
	}
	data = data[:n]

	switch tp {
	case MYSQL_TYPE_NULL:
		v = NullFieldValue()
	case MYSQL_TYPE_TINY:
		v = NewFieldValue(MyTinyInt(data[0]))
	case MYSQL_TYPE_SHORT:
		v = NewFieldValue(MySmallInt(binary.LittleEndian.Uint16(data)))
	case MYSQL_TYPE_INT24:
		v = NewFieldValue(MyMediumInt(FixedLengthInt(data)))
	case MYSQL_TYPE_LONG:
		v = NewFieldValue(MyInt(binary.LittleEndian.Uint32(data)))
	case MYSQL_TYPE_LONGLONG:
		v = NewFieldValue(MyBigInt(binary.LittleEndian.Uint64(data)))
	case MYSQL_TYPE_FLOAT:
		v = NewFieldValue(MyFloat(math.Float32frombits(binary.LittleEndian.Uint32(data))))
	case MYSQL_TYPE_DOUBLE:
		v = NewFieldValue(MyDouble(math.Float64frombits(binary.LittleEndian.Uint64(data))))
	case MYSQL_TYPE_DATE:
		v = NewFieldValue(MyDate(FixedLengthInt(data)))
	case MYSQL_TYPE_DATETIME:
		v = NewFieldValue(MyDateTime(binary.LittleEndian.Uint64(data)))
	case MYSQL_TYPE_TIMESTAMP:
		v = NewFieldValue(MyTimestamp(binary.LittleEndian.Uint32(data)))
	case MYSQL_TYPE_TIME:
		v = NewFieldValue(MyTime(parseInt24(data)))
	case MYSQL_TYPE_ENUM:
		v = NewFieldValue(MyEnum(FixedLengthInt(data)))
	case MYSQL_TYPE_SET:
		v = NewFieldValue(MySet(FixedLengthInt(data)))
	case MYSQL_TYPE_BIT:
		v = NewFieldValue(MyBit(BFixedLengthInt(data)))
	}
	return v, n, nil
}

func fixedValueLength(tp byte, meta uint16) (int, error) {
	switch tp {
	case MYSQL_TYPE_NULL:
		return 0, nil
	case MYSQL_TYPE_TINY:
		return 1, nil
	case MYSQL_TYPE_SHORT:
		return 2, nil
	case MYSQL_TYPE_INT24, MYSQL_TYPE_DATE, MYSQL_TYPE_TIME:
		return 3, nil
	case MYSQL_TYPE_LONG, MYSQL_TYPE_FLOAT, MYSQL_TYPE_TIMESTAMP:
		return 4, nil
	case MYSQL_TYPE_LONGLONG, MYSQL_TYPE_DOUBLE, MYSQL_TYPE_DATETIME:
		return 8, nil
	case MYSQL_TYPE_ENUM:
		switch l := meta & 0xFF; l {
		case 1, 2:
			return int(l), nil
		default:
			return 0, errors.Errorf("Unknown ENUM packlen=%d", l)
		}
	case MYSQL_TYPE_SET:
		l := int(meta & 0xFF)
		if l < 1 || l > 8 {
			return 0, errors.Errorf("Unknown SET packlen=%d", l)
		}
		return l, nil
	case MYSQL_TYPE_BIT:
		nbits := ((meta >> 8) * 8) + (meta & 0xFF)
		return int(nbits+7) / 8, nil
	default:
		return 0, errors.Annotatef(ErrUnsupportedType, "%s type %d", typeClass(tp), tp)
	}
}

// typeClass names the family of a column type for error messages.
func typeClass(tp byte) string {
	switch {
	case IsNumericType(tp):
		return "numeric"
	case IsTemporalType(tp):
		return "temporal"
	case IsCharacterType(tp):
		return "character"
	default:
		return "binary"
	}
}

func parseInt24(data []byte) int32 {
	u32 := uint32(FixedLengthInt(data[:3]))
	if u32&0x00800000 != 0 {
		u32 |= 0xFF000000
	}
	return int32(u32)
}

// FixedLengthInt: little endian
func FixedLengthInt(buf []byte) uint64 {
	var num uint64 = 0
	for i, b := range buf {
		num |= uint64(b) << (uint(i) * 8)
	}
	return num
}

// BFixedLengthInt: big endian
func BFixedLengthInt(buf []byte) uint64 {
	var num uint64 = 0
	for i, b := range buf {
		num |= uint64(b) << (uint(len(buf)-i-1) * 8)
	}
	return num
}
