package mysql

import (
	"strings"

	"github.com/pingcap/errors"
)

// RowType selects how a consumer lays out the field values of one row: keyed
// by column name or by column position.
type RowType uint8

const (
	RowTypeMap RowType = iota
	RowTypeVector
)

func (t RowType) String() string {
	switch t {
	case RowTypeMap:
		return "map"
	case RowTypeVector:
		return "vector"
	default:
		return "unknown"
	}
}

func (t RowType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *RowType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "map", "":
		*t = RowTypeMap
	case "vector":
		*t = RowTypeVector
	default:
		return errors.Errorf("invalid row type %q", text)
	}
	return nil
}
