// Package agegate implements the birth date verification flow that blocks
// storefront content until a visitor proves minimum-age eligibility. It is
// pure domain logic: storage and transport are injected.
package agegate

import (
	"errors"
	"time"
)

// Status is the in-memory verification state of one visitor session.
type Status int

const (
	// StatusUnknown covers both "flag not yet read" and "not verified";
	// either way the gate renders and content stays blocked.
	StatusUnknown Status = iota
	// StatusVerified means the visitor passed the gate, now or on an
	// earlier visit. The gate renders nothing from here on.
	StatusVerified
	// StatusRejected means the most recent submit attempt failed. It is
	// never persisted; the visitor may correct the fields and retry.
	StatusRejected
)

// String returns a short label for logs.
func (s Status) String() string {
	switch s {
	case StatusVerified:
		return "verified"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Gate owns one visitor's verification state: the persisted flag, the draft
// input form, and the most recent error message. It reads the store at
// construction so a previously verified visitor never sees the gate flash.
type Gate struct {
	store     VerificationStore
	now       func() time.Time
	status    Status
	form      *Form
	message   string
	observers []func()
}

// Option customises Gate construction.
type Option func(*Gate)

// WithClock overrides the clock used for age computation. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// New builds a Gate backed by store. The persisted flag is read before New
// returns; a read error is treated as unverified so the gate fails closed.
func New(store VerificationStore, opts ...Option) *Gate {
	g := &Gate{
		store:  store,
		now:    time.Now,
		status: StatusUnknown,
		form:   NewForm(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if verified, err := store.Verified(); err == nil && verified {
		g.status = StatusVerified
	}
	return g
}

// Status returns the current verification state.
func (g *Gate) Status() Status {
	return g.status
}

// Visible reports whether the blocking overlay should render. While it is
// visible the surrounding shell must not mount any other interactive
// surface.
func (g *Gate) Visible() bool {
	return g.status != StatusVerified
}

// Form exposes the draft input fields. Field values survive failed submit
// attempts and are only cleared by constructing a new Gate.
func (g *Gate) Form() *Form {
	return g.form
}

// Message returns the error text from the most recent failed submit, or ""
// after a successful or not-yet-attempted submit.
func (g *Gate) Message() string {
	return g.message
}

// OnVerified registers a callback fired once when verification succeeds,
// so the surrounding shell can unblock rendering without a reload.
func (g *Gate) OnVerified(fn func()) {
	g.observers = append(g.observers, fn)
}

// Submit validates the current form values. On success the verified flag
// is persisted, the status becomes StatusVerified and observers fire; the
// returned error is then nil unless persisting the flag failed. On a
// validation failure the *ValidationError is returned, the message is set
// and the field values stay as typed.
func (g *Gate) Submit() error {
	if g.status == StatusVerified {
		return nil
	}
	g.message = ""

	month, day, year := g.form.Values()
	if err := Validate(month, day, year, g.now()); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			g.message = verr.Message
		}
		g.status = StatusRejected
		return err
	}

	storeErr := g.store.SetVerified(true)
	g.status = StatusVerified
	for _, fn := range g.observers {
		fn()
	}
	return storeErr
}
