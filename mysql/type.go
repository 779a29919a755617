package mysql

// IsNumericType reports whether a column of this type holds a number,
// integer, floating point or decimal. From: sql/log_event.cc and sql/field.h
func IsNumericType(typ byte) bool {
	switch typ {
	case MYSQL_TYPE_TINY, MYSQL_TYPE_SHORT, MYSQL_TYPE_INT24, MYSQL_TYPE_LONG, MYSQL_TYPE_LONGLONG:
		return true
	case MYSQL_TYPE_FLOAT, MYSQL_TYPE_DOUBLE:
		return true
	case MYSQL_TYPE_DECIMAL, MYSQL_TYPE_NEWDECIMAL:
		return true
	default:
		return false
	}
}

// IsTemporalType returns true if the given type carries a date, a time of day
// or both.
func IsTemporalType(typ byte) bool {
	switch typ {
	case MYSQL_TYPE_DATE,
		MYSQL_TYPE_NEWDATE,
		MYSQL_TYPE_TIME,
		MYSQL_TYPE_TIME2,
		MYSQL_TYPE_DATETIME,
		MYSQL_TYPE_DATETIME2,
		MYSQL_TYPE_TIMESTAMP,
		MYSQL_TYPE_TIMESTAMP2,
		MYSQL_TYPE_YEAR:
		return true

	default:
		return false
	}
}

// IsCharacterType returns true if the given type is stored as a length
// prefixed string.
func IsCharacterType(typ byte) bool {
	switch typ {
	case MYSQL_TYPE_STRING,
		MYSQL_TYPE_VAR_STRING,
		MYSQL_TYPE_VARCHAR,
		MYSQL_TYPE_BLOB:
		return true

	default:
		return false
	}
}
