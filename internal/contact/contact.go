// Package contact models visitor messages submitted through the contact
// form.
package contact

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is one contact form message.
type Submission struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

// Validate checks required fields and the email shape. It returns a map of
// field name to message, empty when the submission is valid, so the form
// can highlight each failing field.
func (s Submission) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(s.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(s.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email address"
	}

	if strings.TrimSpace(s.Message) == "" {
		errs["message"] = "Message is required"
	}

	return errs
}
