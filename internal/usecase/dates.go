package usecase

import (
	"strings"
	"time"

	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

const dayLayout = "2006-01-02"

// parseTimestamp accepts YYYY-MM-DD (midnight in loc) or RFC 3339.
func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dayLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.Validation("invalid date: " + value + " (expected YYYY-MM-DD or RFC 3339)")
}

// parseDay returns the start of the calendar day value falls on in loc.
func parseDay(value string, loc *time.Location) (time.Time, error) {
	t, err := parseTimestamp(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// dayWindow is [day, next day).
func dayWindow(value string, loc *time.Location) (repository.DateWindow, error) {
	day, err := parseDay(value, loc)
	if err != nil {
		return repository.DateWindow{}, err
	}
	return repository.DateWindow{From: day, To: day.AddDate(0, 0, 1)}, nil
}

// rangeWindow covers both days in full: [from, day after to).
func rangeWindow(from, to string, loc *time.Location) (repository.DateWindow, error) {
	start, err := parseDay(from, loc)
	if err != nil {
		return repository.DateWindow{}, err
	}
	end, err := parseDay(to, loc)
	if err != nil {
		return repository.DateWindow{}, err
	}
	if end.Before(start) {
		return repository.DateWindow{}, errors.Validation("from must not be after to")
	}
	return repository.DateWindow{From: start, To: end.AddDate(0, 0, 1)}, nil
}
