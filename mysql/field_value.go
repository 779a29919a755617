package mysql

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pingcap/errors"
	"github.com/shopspring/decimal"
)

// Scalar is the closed set of payloads a FieldValue can carry.
type Scalar interface {
	int8 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64 | string | decimal.Decimal
}

type FieldValueType uint8

const (
	FieldValueTypeNull FieldValueType = iota
	FieldValueTypeInt8
	FieldValueTypeUint16
	FieldValueTypeInt32
	FieldValueTypeUint32
	FieldValueTypeInt64
	FieldValueTypeUint64
	FieldValueTypeFloat32
	FieldValueTypeFloat64
	FieldValueTypeString
	FieldValueTypeDecimal
)

var fieldValueTypeNames = [...]string{
	FieldValueTypeNull:    "null",
	FieldValueTypeInt8:    "int8",
	FieldValueTypeUint16:  "uint16",
	FieldValueTypeInt32:   "int32",
	FieldValueTypeUint32:  "uint32",
	FieldValueTypeInt64:   "int64",
	FieldValueTypeUint64:  "uint64",
	FieldValueTypeFloat32: "float32",
	FieldValueTypeFloat64: "float64",
	FieldValueTypeString:  "string",
	FieldValueTypeDecimal: "decimal",
}

func (t FieldValueType) String() string {
	if int(t) < len(fieldValueTypeNames) {
		return fieldValueTypeNames[t]
	}
	return fmt.Sprintf("FieldValueType(%d)", uint8(t))
}

// FieldValue is one decoded column value. Only the slot selected by the tag
// is meaningful, and the tag is fixed at construction. The zero FieldValue is
// NULL.
type FieldValue struct {
	typ FieldValueType

	value uint64 // integer and float payloads as raw bits, signed ones sign-extended
	str   string
	dec   decimal.Decimal
}

// NullFieldValue returns the NULL value. It is never equal to an empty string
// or a zero number.
func NullFieldValue() FieldValue {
	return FieldValue{typ: FieldValueTypeNull}
}

// NewFieldValue wraps v, tagging it with its exact Go type.
func NewFieldValue[T Scalar](v T) FieldValue {
	switch v := any(v).(type) {
	case int8:
		return FieldValue{typ: FieldValueTypeInt8, value: uint64(int64(v))}
	case uint16:
		return FieldValue{typ: FieldValueTypeUint16, value: uint64(v)}
	case int32:
		return FieldValue{typ: FieldValueTypeInt32, value: uint64(int64(v))}
	case uint32:
		return FieldValue{typ: FieldValueTypeUint32, value: uint64(v)}
	case int64:
		return FieldValue{typ: FieldValueTypeInt64, value: uint64(v)}
	case uint64:
		return FieldValue{typ: FieldValueTypeUint64, value: v}
	case float32:
		return FieldValue{typ: FieldValueTypeFloat32, value: uint64(math.Float32bits(v))}
	case float64:
		return FieldValue{typ: FieldValueTypeFloat64, value: math.Float64bits(v)}
	case string:
		return FieldValue{typ: FieldValueTypeString, str: v}
	case decimal.Decimal:
		return FieldValue{typ: FieldValueTypeDecimal, dec: v}
	}
	panic("unreachable")
}

func (fv FieldValue) Type() FieldValueType {
	return fv.typ
}

func (fv FieldValue) IsNull() bool {
	return fv.typ == FieldValueTypeNull
}

// Get returns the payload of fv if it was built from a T. Any other stored
// type, including an integer of another width, yields ErrTypeMismatch.
func Get[T Scalar](fv FieldValue) (T, error) {
	var v T
	if want := scalarType[T](); fv.typ != want {
		return v, errors.Annotatef(ErrTypeMismatch, "get %s from %s value", want, fv.typ)
	}

	switch p := any(&v).(type) {
	case *int8:
		*p = int8(fv.value)
	case *uint16:
		*p = uint16(fv.value)
	case *int32:
		*p = int32(fv.value)
	case *uint32:
		*p = uint32(fv.value)
	case *int64:
		*p = int64(fv.value)
	case *uint64:
		*p = fv.value
	case *float32:
		*p = math.Float32frombits(uint32(fv.value))
	case *float64:
		*p = math.Float64frombits(fv.value)
	case *string:
		*p = fv.str
	case *decimal.Decimal:
		*p = fv.dec
	}
	return v, nil
}

// MustGet is like Get but panics on a type mismatch. Asking for the wrong
// type is a programming error.
func MustGet[T Scalar](fv FieldValue) T {
	v, err := Get[T](fv)
	if err != nil {
		panic(err)
	}
	return v
}

func scalarType[T Scalar]() FieldValueType {
	var v T
	switch any(v).(type) {
	case int8:
		return FieldValueTypeInt8
	case uint16:
		return FieldValueTypeUint16
	case int32:
		return FieldValueTypeInt32
	case uint32:
		return FieldValueTypeUint32
	case int64:
		return FieldValueTypeInt64
	case uint64:
		return FieldValueTypeUint64
	case float32:
		return FieldValueTypeFloat32
	case float64:
		return FieldValueTypeFloat64
	case string:
		return FieldValueTypeString
	default:
		return FieldValueTypeDecimal
	}
}

// Value returns the payload as an interface{}, or nil for NULL.
func (fv FieldValue) Value() interface{} {
	switch fv.typ {
	case FieldValueTypeInt8:
		return int8(fv.value)
	case FieldValueTypeUint16:
		return uint16(fv.value)
	case FieldValueTypeInt32:
		return int32(fv.value)
	case FieldValueTypeUint32:
		return uint32(fv.value)
	case FieldValueTypeInt64:
		return int64(fv.value)
	case FieldValueTypeUint64:
		return fv.value
	case FieldValueTypeFloat32:
		return math.Float32frombits(uint32(fv.value))
	case FieldValueTypeFloat64:
		return math.Float64frombits(fv.value)
	case FieldValueTypeString:
		return fv.str
	case FieldValueTypeDecimal:
		return fv.dec
	default:
		return nil
	}
}

func (fv FieldValue) String() string {
	switch fv.typ {
	case FieldValueTypeInt8, FieldValueTypeInt32, FieldValueTypeInt64:
		return strconv.FormatInt(int64(fv.value), 10)
	case FieldValueTypeUint16, FieldValueTypeUint32, FieldValueTypeUint64:
		return strconv.FormatUint(fv.value, 10)
	case FieldValueTypeFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(fv.value))), 'f', -1, 32)
	case FieldValueTypeFloat64:
		return strconv.FormatFloat(math.Float64frombits(fv.value), 'f', -1, 64)
	case FieldValueTypeString:
		return fv.str
	case FieldValueTypeDecimal:
		return fv.dec.String()
	default:
		return "NULL"
	}
}

func (fv FieldValue) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(fv.Value())
	if err != nil {
		return nil, errors.Trace(err)
	}
	return data, nil
}
