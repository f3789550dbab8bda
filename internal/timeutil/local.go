package timeutil

import (
	"time"
)

// Factory is the factory-local timezone (UTC+5)
var Factory *time.Location

func init() {
	var err error
	Factory, err = time.LoadLocation("Asia/Tashkent")
	if err != nil {
		// Fallback: create fixed zone if Asia/Tashkent not available
		Factory = time.FixedZone("UZT", 5*60*60) // UTC+5
	}
}

// Now returns the current time in the factory timezone
func Now() time.Time {
	return time.Now().In(Factory)
}

// ToLocal converts any time to the factory timezone
func ToLocal(t time.Time) time.Time {
	return t.In(Factory)
}

// StartOfDay returns the start of day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	local := t.In(Factory)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Factory)
}

// StartOfMonth returns the first instant of the month containing t
func StartOfMonth(t time.Time) time.Time {
	local := t.In(Factory)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, Factory)
}

// Common layouts for stored and displayed timestamps
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02.01.2006 15:04"
)

// EntryLayouts are the timestamp formats accepted when reading stored
// production entries. Entries whose timestamp matches none of them are
// skipped by the report engine.
var EntryLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseEntryTime parses a stored entry timestamp in the factory timezone.
func ParseEntryTime(value string) (time.Time, bool) {
	for _, layout := range EntryLayouts {
		if t, err := time.ParseInLocation(layout, value, Factory); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
