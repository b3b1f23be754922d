package agegate

import (
	"strconv"
	"time"
)

// MinimumAge is the youngest age allowed through the gate.
const MinimumAge = 21

// minBirthYear is the earliest accepted birth year.
const minBirthYear = 1900

// User-facing validation messages. The wording is fixed; the front end
// renders these strings verbatim in an assertive live region.
const (
	MsgIncompleteBirthDate = "Please enter your complete birth date"
	MsgInvalidBirthDate    = "Please enter a valid birth date"
	MsgUnderMinimumAge     = "You must be 21 or older to enter"
)

// ValidationError is a user-correctable submit failure. Message is the
// exact text shown to the visitor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a submitted birth date against today. Rules run in a
// fixed order and the first failure wins: completeness, range validity,
// then the minimum-age threshold. A nil return means the visitor is old
// enough to enter.
//
// The day range check is 1-31 regardless of month; an impossible
// month/day pair such as 02/31 rolls over when the date is constructed
// (matching the long-standing site behaviour) and is judged on the
// rolled-over date.
func Validate(month, day, year string, today time.Time) error {
	if month == "" || day == "" || year == "" {
		return &ValidationError{Message: MsgIncompleteBirthDate}
	}

	m, mErr := strconv.Atoi(month)
	d, dErr := strconv.Atoi(day)
	y, yErr := strconv.Atoi(year)
	if mErr != nil || dErr != nil || yErr != nil {
		return &ValidationError{Message: MsgInvalidBirthDate}
	}

	if m < 1 || m > 12 || d < 1 || d > 31 || y < minBirthYear || y > today.Year() {
		return &ValidationError{Message: MsgInvalidBirthDate}
	}

	birth := time.Date(y, time.Month(m), d, 0, 0, 0, 0, today.Location())
	if ageOn(birth, today) < MinimumAge {
		return &ValidationError{Message: MsgUnderMinimumAge}
	}
	return nil
}

// ageOn returns the whole-year age at today for someone born on birth.
// The year difference is decremented when the birthday has not yet
// occurred this year, so a visitor turning 21 today passes.
func ageOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
