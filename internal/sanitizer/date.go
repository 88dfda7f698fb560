package sanitizer

import (
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// DateToEpoch tries config.DateLayouts in order and returns the Unix seconds
// of midnight UTC on the first date that parses the whole input.
func DateToEpoch(raw string) (int64, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return 0, false
	}
	return t.Unix(), true
}

// ParseDate is DateToEpoch without the epoch conversion.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range config.DateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EpochToDate converts Unix seconds back to the calendar date they encode.
func EpochToDate(epoch int64) time.Time {
	return time.Unix(epoch, 0).UTC()
}
