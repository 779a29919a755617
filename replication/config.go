package replication

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/siddontang/go-log/log"

	"github.com/aarchetype/libslave/mysql"
)

const (
	timeZoneLocal = "Local"
	timeZoneUTC   = "UTC"
)

type Config struct {
	// IANA zone name, like Asia/Shanghai, used to read DATE and DATETIME
	// values as wall clock time. Empty or "Local" means the process zone.
	TimeZone string `toml:"time_zone"`

	// How to treat daylight saving time: auto, standard or daylight.
	DST DSTMode `toml:"dst"`

	// Row shape handed to consumers: map (by column name) or vector (by position).
	RowType mysql.RowType `toml:"row_type"`
}

func NewConfigWithFile(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return NewConfig(string(data))
}

func NewConfig(data string) (*Config, error) {
	c := NewDefaultConfig()

	_, err := toml.Decode(data, c)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return c, nil
}

// NewDefaultConfig reads values in the process time zone with DST left to the
// zone rules, and hands out rows keyed by column name.
func NewDefaultConfig() *Config {
	c := new(Config)

	c.TimeZone = timeZoneLocal
	c.DST = DSTAuto
	c.RowType = mysql.RowTypeMap

	return c
}

// TimeContext loads the configured zone. Call it once at startup and share
// the result with every decoder.
func (c *Config) TimeContext() (*TimeContext, error) {
	var loc *time.Location
	switch c.TimeZone {
	case "", timeZoneLocal:
		loc = time.Local
	case timeZoneUTC:
		loc = time.UTC
	default:
		var err error
		loc, err = time.LoadLocation(c.TimeZone)
		if err != nil {
			return nil, errors.Annotatef(err, "load time zone %s", c.TimeZone)
		}
	}

	if c.DST != DSTAuto {
		log.Warnf("dst mode %s overrides the daylight saving rules of %s", c.DST, loc)
	}
	log.Infof("decode packed date and datetime values in time zone %s, dst mode %s", loc, c.DST)

	return NewTimeContext(loc, c.DST), nil
}
