package mysql

import (
	"github.com/pingcap/errors"
)

var (
	ErrTypeMismatch    = errors.New("field value type mismatch")
	ErrUnsupportedType = errors.New("unsupported fixed-width column type")
	ErrShortBuffer     = errors.New("short buffer for column value")
)
