package model

import (
	"fmt"
	"strings"
	"time"
)

// isoLocalLayout is the timestamp shape the marketplace backend speaks: ISO
// 8601 without a timezone suffix.
const isoLocalLayout = "2006-01-02T15:04:05"

// LocalTime is a time.Time that marshals without a timezone offset and
// accepts backend timestamps with or without fractional seconds or a zone.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Format(isoLocalLayout) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		lt.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{
		isoLocalLayout,
		"2006-01-02T15:04:05.999999999",
		time.RFC3339,
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			lt.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}
