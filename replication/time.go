package replication

import (
	"fmt"
	"strings"
	"time"

	"github.com/pingcap/errors"

	"github.com/aarchetype/libslave/mysql"
)

const (
	zeroDateString     = "0000-00-00"
	zeroDateTimeString = "0000-00-00 00:00:00"
)

// DSTMode tells how a wall clock time that carries no zone information is
// mapped onto the daylight saving rules of a location.
type DSTMode uint8

const (
	// DSTAuto lets the zone rules decide, like mktime with tm_isdst = -1.
	// A wall clock skipped by a DST transition resolves to after it.
	DSTAuto DSTMode = iota
	// DSTStandard always applies the standard offset of the decoded year.
	DSTStandard
	// DSTDaylight always applies the daylight offset of the decoded year,
	// which is what mktime does with tm_isdst = daylight.
	DSTDaylight
)

func (m DSTMode) String() string {
	switch m {
	case DSTAuto:
		return "auto"
	case DSTStandard:
		return "standard"
	case DSTDaylight:
		return "daylight"
	default:
		return "unknown"
	}
}

func (m DSTMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *DSTMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "auto", "":
		*m = DSTAuto
	case "standard":
		*m = DSTStandard
	case "daylight":
		*m = DSTDaylight
	default:
		return errors.Errorf("invalid dst mode %q", text)
	}
	return nil
}

// TimeContext is the zone in which packed DATE and DATETIME values are read
// as wall clock time. It is immutable, so one context can serve any number of
// goroutines, and contexts for different zones can live side by side.
//
// The zero TimeContext uses time.Local and DSTAuto.
type TimeContext struct {
	loc *time.Location
	dst DSTMode
}

func NewTimeContext(loc *time.Location, dst DSTMode) *TimeContext {
	return &TimeContext{loc: loc, dst: dst}
}

func (c *TimeContext) Location() *time.Location {
	if c == nil || c.loc == nil {
		return time.Local
	}
	return c.loc
}

func (c *TimeContext) DST() DSTMode {
	if c == nil {
		return DSTAuto
	}
	return c.dst
}

// DecodeDate converts a packed DATE (day in bits 0-4, month in bits 5-8, year
// above) to seconds since the epoch at local midnight. The zero date
// '0000-00-00' maps to 0. Fields are not validated: an impossible day rolls
// over into the next month the way time.Date normalizes it.
func (c *TimeContext) DecodeDate(date mysql.MyDate) int64 {
	if date == 0 {
		return 0
	}

	year := int(date >> 9)
	month := int((date >> 5) % (1 << 4))
	day := int(date % (1 << 5))

	return c.unix(year, month, day, 0, 0, 0)
}

// DecodeDateTime converts a packed DATETIME, the decimal digits
// YYYYMMDDHHMMSS held in a uint64 (20110313094909), to seconds since the
// epoch. The zero value maps to 0.
func (c *TimeContext) DecodeDateTime(datetime mysql.MyDateTime) int64 {
	if datetime == 0 {
		return 0
	}

	year := int(datetime / 10000000000)
	month := int((datetime / 100000000) % 100)
	day := int((datetime / 1000000) % 100)
	hour := int((datetime / 10000) % 100)
	minute := int((datetime / 100) % 100)
	second := int(datetime % 100)

	return c.unix(year, month, day, hour, minute, second)
}

func (c *TimeContext) unix(year, month, day, hour, minute, second int) int64 {
	loc := c.Location()
	wall := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC).Unix()

	dst := c.DST()
	if dst == DSTAuto {
		t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
		_, offset := t.Zone()

		// A wall clock inside a DST gap may come back before the transition,
		// which on a midnight transition is the previous day. Move it past the
		// transition by the gap length, as mktime does.
		if gap := wall - (t.Unix() + int64(offset)); gap > 0 {
			return t.Unix() + gap
		}
		return t.Unix()
	}

	std, daylight := zoneOffsets(year, loc)
	offset := std
	if dst == DSTDaylight {
		offset = daylight
	}
	return wall - int64(offset)
}

// zoneOffsets returns the standard and daylight UTC offsets, in seconds, that
// loc uses in the given year. Both are the same for a year without DST.
func zoneOffsets(year int, loc *time.Location) (std int, daylight int) {
	jan := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	jul := time.Date(year, time.July, 1, 0, 0, 0, 0, loc)
	_, janOffset := jan.Zone()
	_, julOffset := jul.Zone()

	// southern hemisphere
	if jan.IsDST() {
		return julOffset, janOffset
	}
	return janOffset, julOffset
}

// DecodeDate converts a packed DATE in the local time zone.
func DecodeDate(date mysql.MyDate) int64 {
	var c TimeContext
	return c.DecodeDate(date)
}

// DecodeDateTime converts a packed DATETIME in the local time zone.
func DecodeDateTime(datetime mysql.MyDateTime) int64 {
	var c TimeContext
	return c.DecodeDateTime(datetime)
}

// DecodeTime converts a TIME value held as [+/-]HHHMMSS, in the range
// -8385959 to 8385959, to a duration.
func DecodeTime(t mysql.MyTime) time.Duration {
	v := int64(t)
	neg := v < 0
	if neg {
		v = -v
	}

	d := time.Duration(v/10000)*time.Hour +
		time.Duration((v/100)%100)*time.Minute +
		time.Duration(v%100)*time.Second
	if neg {
		return -d
	}
	return d
}

func PackDate(year, month, day int) mysql.MyDate {
	return mysql.MyDate(year<<9 | month<<5 | day)
}

func PackDateTime(year, month, day, hour, minute, second int) mysql.MyDateTime {
	return mysql.MyDateTime(year)*10000000000 +
		mysql.MyDateTime(month)*100000000 +
		mysql.MyDateTime(day)*1000000 +
		mysql.MyDateTime(hour)*10000 +
		mysql.MyDateTime(minute)*100 +
		mysql.MyDateTime(second)
}

// FormatDate renders a packed DATE the way MySQL prints it, without any time
// zone conversion.
func FormatDate(date mysql.MyDate) string {
	if date == 0 {
		return zeroDateString
	}
	return fmt.Sprintf("%04d-%02d-%02d", date>>9, (date>>5)%(1<<4), date%(1<<5))
}

func FormatDateTime(datetime mysql.MyDateTime) string {
	if datetime == 0 {
		return zeroDateTimeString
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		datetime/10000000000,
		(datetime/100000000)%100,
		(datetime/1000000)%100,
		(datetime/10000)%100,
		(datetime/100)%100,
		datetime%100)
}

// FormatTime renders a TIME value as [-]HH:MM:SS, with at least two hour digits.
func FormatTime(t mysql.MyTime) string {
	v := int64(t)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, v/10000, (v/100)%100, v%100)
}
