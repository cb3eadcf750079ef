package domain

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is a calendar date carried on upstream event payloads as
// "2006-01-02". Full RFC3339 timestamps are tolerated and truncated.
type ISODate struct {
	time.Time
}

// NewISODate builds a date from a time value.
func NewISODate(t time.Time) ISODate {
	return ISODate{Time: t}
}

func (d *ISODate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// AtStartOfDay returns midnight of the date in the given zone.
func (d ISODate) AtStartOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
