package api

import (
	"errors"
	"strings"
	"time"
)

var errBadDate = errors.New("unrecognised date")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts full RFC 3339 timestamps as well as the bare dates and
// local datetimes that HTML date inputs submit. Bare values are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadDate
}
