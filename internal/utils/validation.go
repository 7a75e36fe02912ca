package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Compiled regular expressions for validation
var (
	// Station codes are short uppercase identifiers (NDLS, BCT, SBC)
	stationCodePattern = regexp.MustCompile(`^[A-Z]{1,10}$`)

	// Train numbers from the upstream timetable are digits, occasionally with
	// a letter suffix
	trainNumberPattern = regexp.MustCompile(`^[0-9A-Za-z_.-]{1,20}$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateStationCode validates a station code path or query parameter.
func ValidateStationCode(code string) error {
	if code == "" {
		return errors.New("station code cannot be empty")
	}

	if !stationCodePattern.MatchString(code) {
		return errors.New("station code must be 1-10 uppercase letters")
	}

	return nil
}

// ValidateTrainNumber validates a train number path parameter.
func ValidateTrainNumber(number string) error {
	if number == "" {
		return errors.New("train number cannot be empty")
	}

	if !trainNumberPattern.MatchString(number) {
		return errors.New("train number contains invalid characters")
	}

	return nil
}

// ValidateQuery validates station search query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD travel date.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return date, nil
}
