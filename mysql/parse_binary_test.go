package mysql

import (
	"math"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeFixedValue(t *testing.T) {
	tbls := []struct {
		tp       byte
		meta     uint16
		data     []byte
		expected FieldValue
		n        int
	}{
		{MYSQL_TYPE_NULL, 0, nil, NullFieldValue(), 0},
		{MYSQL_TYPE_TINY, 0, []byte{0xff}, NewFieldValue(MyTinyInt(-1)), 1},
		{MYSQL_TYPE_TINY, 0, []byte{0x7f, 0x00}, NewFieldValue(MyTinyInt(127)), 1},
		{MYSQL_TYPE_SHORT, 0, []byte{0xff, 0xff}, NewFieldValue(MySmallInt(65535)), 2},
		// 24-bit columns are zero extended into the 32-bit carrier
		{MYSQL_TYPE_INT24, 0, []byte{0xff, 0xff, 0xff}, NewFieldValue(MyMediumInt(0xFFFFFF)), 3},
		{MYSQL_TYPE_INT24, 0, []byte{0x01, 0x02, 0x03}, NewFieldValue(MyMediumInt(0x030201)), 3},
		{MYSQL_TYPE_LONG, 0, []byte{0x78, 0x56, 0x34, 0x12}, NewFieldValue(MyInt(0x12345678)), 4},
		{MYSQL_TYPE_LONGLONG, 0, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, NewFieldValue(MyBigInt(math.MaxUint64)), 8},
		{MYSQL_TYPE_FLOAT, 0, []byte{0x00, 0x00, 0xc0, 0x3f}, NewFieldValue(MyFloat(1.5)), 4},
		{MYSQL_TYPE_DOUBLE, 0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f}, NewFieldValue(MyDouble(1.5)), 8},
		// 2011-03-13: 2011<<9 | 3<<5 | 13 = 0x0FB66D
		{MYSQL_TYPE_DATE, 0, []byte{0x6d, 0xb6, 0x0f}, NewFieldValue(MyDate(2011<<9 | 3<<5 | 13)), 3},
		// 20110313094909 = 0x124A4C117EFD
		{MYSQL_TYPE_DATETIME, 0, []byte{0xfd, 0x7e, 0x11, 0x4c, 0x4a, 0x12, 0x00, 0x00}, NewFieldValue(MyDateTime(20110313094909)), 8},
		{MYSQL_TYPE_TIMESTAMP, 0, []byte{0x00, 0x00, 0x00, 0x80}, NewFieldValue(MyTimestamp(0x80000000)), 4},
		// -8385959 as a 24-bit two's complement value
		{MYSQL_TYPE_TIME, 0, []byte{0x59, 0x0a, 0x80}, NewFieldValue(MyTime(-8385959)), 3},
		{MYSQL_TYPE_TIME, 0, []byte{0xa7, 0xf5, 0x7f}, NewFieldValue(MyTime(8385959)), 3},
		{MYSQL_TYPE_ENUM, 1, []byte{0x03}, NewFieldValue(MyEnum(3)), 1},
		{MYSQL_TYPE_ENUM, 2, []byte{0x01, 0x01}, NewFieldValue(MyEnum(257)), 2},
		{MYSQL_TYPE_SET, 3, []byte{0x01, 0x00, 0x80}, NewFieldValue(MySet(0x800001)), 3},
		// BIT(12) is two big-endian bytes
		{MYSQL_TYPE_BIT, 1<<8 | 4, []byte{0x0a, 0xbc}, NewFieldValue(MyBit(0x0abc)), 2},
	}

	for i, tbl := range tbls {
		v, n, err := DecodeFixedValue(tbl.tp, tbl.meta, tbl.data)
		require.NoError(t, err, "case %d", i)
		require.Equal(t, tbl.n, n, "case %d", i)
		require.Equal(t, tbl.expected, v, "case %d", i)
	}
}

func TestDecodeFixedValueErrors(t *testing.T) {
	_, _, err := DecodeFixedValue(MYSQL_TYPE_LONG, 0, []byte{0x01, 0x02})
	require.Equal(t, ErrShortBuffer, errors.Cause(err))

	for _, tp := range []byte{MYSQL_TYPE_VARCHAR, MYSQL_TYPE_BLOB, MYSQL_TYPE_NEWDECIMAL, MYSQL_TYPE_JSON, MYSQL_TYPE_DATETIME2} {
		_, _, err = DecodeFixedValue(tp, 0, make([]byte, 16))
		require.Equal(t, ErrUnsupportedType, errors.Cause(err), "type %d", tp)
	}

	tbls := []struct {
		tp    byte
		class string
	}{
		{MYSQL_TYPE_NEWDECIMAL, "numeric type 246"},
		{MYSQL_TYPE_DATETIME2, "temporal type 18"},
		{MYSQL_TYPE_TIMESTAMP2, "temporal type 17"},
		{MYSQL_TYPE_VARCHAR, "character type 15"},
		{MYSQL_TYPE_JSON, "binary type 245"},
	}
	for _, tbl := range tbls {
		_, _, err = DecodeFixedValue(tbl.tp, 0, make([]byte, 16))
		require.Contains(t, err.Error(), tbl.class)
	}

	_, _, err = DecodeFixedValue(MYSQL_TYPE_ENUM, 3, make([]byte, 3))
	require.Error(t, err)
	_, _, err = DecodeFixedValue(MYSQL_TYPE_SET, 9, make([]byte, 9))
	require.Error(t, err)
}

func TestFixedLengthInt(t *testing.T) {
	require.Equal(t, uint64(0x030201), FixedLengthInt([]byte{0x01, 0x02, 0x03}))
	require.Equal(t, uint64(0x010203), BFixedLengthInt([]byte{0x01, 0x02, 0x03}))
	require.Equal(t, uint64(0), FixedLengthInt(nil))
}

func TestColumnTypeClass(t *testing.T) {
	require.True(t, IsNumericType(MYSQL_TYPE_INT24))
	require.True(t, IsNumericType(MYSQL_TYPE_NEWDECIMAL))
	require.False(t, IsNumericType(MYSQL_TYPE_DATE))

	require.True(t, IsCharacterType(MYSQL_TYPE_VAR_STRING))
	require.False(t, IsCharacterType(MYSQL_TYPE_JSON))

	require.True(t, IsTemporalType(MYSQL_TYPE_DATE))
	require.True(t, IsTemporalType(MYSQL_TYPE_DATETIME2))
	require.False(t, IsTemporalType(MYSQL_TYPE_VARCHAR))
}

func TestRowType(t *testing.T) {
	var rt RowType
	require.Equal(t, RowTypeMap, rt)

	require.NoError(t, rt.UnmarshalText([]byte("Vector")))
	require.Equal(t, RowTypeVector, rt)

	text, err := rt.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "vector", string(text))

	require.Error(t, rt.UnmarshalText([]byte("tree")))
	require.Equal(t, "map", RowTypeMap.String())
}
