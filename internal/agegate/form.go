package agegate

import "unicode"

// FieldName identifies one of the three birth date entry fields.
type FieldName int

const (
	FieldMonth FieldName = iota
	FieldDay
	FieldYear
)

// String returns the field name used in form payloads and logs.
func (f FieldName) String() string {
	switch f {
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldYear:
		return "year"
	default:
		return "unknown"
	}
}

const (
	monthMaxLen = 2
	dayMaxLen   = 2
	yearMaxLen  = 4
)

// field holds the draft text of a single entry box.
type field struct {
	value  string
	maxLen int
}

func (f *field) typeRune(r rune) bool {
	if !unicode.IsDigit(r) {
		return false
	}
	if len(f.value) >= f.maxLen {
		// Overflow characters are dropped silently, never an error.
		return false
	}
	f.value += string(r)
	return true
}

// Form is the draft state of the three birth date fields. Values persist
// across failed submit attempts; only a fresh Form starts empty.
type Form struct {
	month field
	day   field
	year  field
}

// NewForm returns a Form with all three fields empty.
func NewForm() *Form {
	return &Form{
		month: field{maxLen: monthMaxLen},
		day:   field{maxLen: dayMaxLen},
		year:  field{maxLen: yearMaxLen},
	}
}

func (f *Form) fieldFor(name FieldName) *field {
	switch name {
	case FieldDay:
		return &f.day
	case FieldYear:
		return &f.year
	default:
		return &f.month
	}
}

// Type appends a single keystroke to the named field and returns the field
// that should hold focus afterwards. Non-digit input and input past the
// length cap are dropped without advancing. Reaching the month or day cap
// advances focus to the next field; the caller may still refocus and edit
// earlier fields at any time.
func (f *Form) Type(name FieldName, r rune) FieldName {
	fld := f.fieldFor(name)
	if !fld.typeRune(r) {
		return name
	}
	if len(fld.value) < fld.maxLen {
		return name
	}
	switch name {
	case FieldMonth:
		return FieldDay
	case FieldDay:
		return FieldYear
	default:
		return name
	}
}

// SetValue replaces the named field's draft text with the sanitized form of
// raw. Submitted values that did not pass through per-keystroke handling
// (for example a pasted string or an HTTP form value) take this path so the
// digit filter and length cap apply identically.
func (f *Form) SetValue(name FieldName, raw string) {
	fld := f.fieldFor(name)
	fld.value = sanitize(raw, fld.maxLen)
}

// Value returns the current draft text of the named field.
func (f *Form) Value(name FieldName) string {
	return f.fieldFor(name).value
}

// Values returns the three draft values in month, day, year order.
func (f *Form) Values() (month, day, year string) {
	return f.month.value, f.day.value, f.year.value
}

// Sanitize reduces raw input to the digits the named field would have
// accepted keystroke by keystroke.
func Sanitize(name FieldName, raw string) string {
	maxLen := monthMaxLen
	if name == FieldYear {
		maxLen = yearMaxLen
	}
	return sanitize(raw, maxLen)
}

func sanitize(raw string, maxLen int) string {
	out := make([]rune, 0, maxLen)
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			continue
		}
		if len(out) >= maxLen {
			break
		}
		out = append(out, r)
	}
	return string(out)
}
