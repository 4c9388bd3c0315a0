package common

import (
	"fmt"
	"strconv"

	"github.com/agenthands/chronicle/internal/errors"
)

var monthAbbrev = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// MalformedDateError reports a date string that NormalizeDate cannot read.
type MalformedDateError struct {
	Value  string
	Reason string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: %s", e.Value, e.Reason)
}

// Is lets errors.Is match the package sentinel.
func (e *MalformedDateError) Is(target error) bool {
	return target == errors.ErrMalformedDate
}

// NormalizeDate converts an ISO-8601 timestamp (YYYY-MM-DDThh:mm:ssZ) into the
// GEDCOM day-month-year form, e.g. "1937-03-19T00:00:00Z" becomes "19 MAR 1937".
// Only the fixed year, month and day offsets are read; the time and zone are ignored.
func NormalizeDate(iso string) (string, error) {
	if len(iso) < 10 {
		return "", &MalformedDateError{Value: iso, Reason: "too short"}
	}

	yearPart := iso[0:4]
	if _, err := strconv.ParseUint(yearPart, 10, 16); err != nil {
		return "", &MalformedDateError{Value: iso, Reason: "year is not numeric"}
	}

	month, err := strconv.ParseUint(iso[5:7], 10, 8)
	if err != nil || month < 1 || month > 12 {
		return "", &MalformedDateError{Value: iso, Reason: "month out of range"}
	}

	day, err := strconv.ParseUint(iso[8:10], 10, 8)
	if err != nil || day == 0 {
		return "", &MalformedDateError{Value: iso, Reason: "day is not a positive number"}
	}

	return fmt.Sprintf("%d %s %s", day, monthAbbrev[month-1], yearPart), nil
}

// YearOf returns the leading four-digit year of an ISO date.
func YearOf(iso string) (int, bool) {
	if len(iso) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(iso[0:4])
	if err != nil {
		return 0, false
	}
	return y, true
}
