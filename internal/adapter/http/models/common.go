package models

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate accepts both plain dates and RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, trimmed)
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
