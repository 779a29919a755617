package mysql

import (
	"github.com/shopspring/decimal"
)

// Go carriers for decoded column values. Each alias is the exact payload type
// a FieldValue holds for that column, so Get[MyInt] and Get[uint32] are the
// same call.
//
// MyMediumInt uses a 32-bit carrier for a 24-bit column and is never sign
// extended; callers that need 24-bit wraparound must mask with 0xFFFFFF.
type (
	MyInt        = uint32
	MyBigInt     = uint64
	MyMediumInt  = uint32
	MySmallInt   = uint16
	MyTinyInt    = int8
	MyBit        = uint64
	MyEnum       = int32
	MySet        = uint64
	MyFloat      = float32
	MyDouble     = float64
	MyDecimal    = decimal.Decimal
	MyDate       = uint32
	MyTime       = int32
	MyDateTime   = uint64
	MyTimestamp  = uint32
	MyChar       = string
	MyVarchar    = string
	MyTinyText   = string
	MyText       = string
	MyMediumText = string
	MyLongText   = string
	MyBlob       = string
)
