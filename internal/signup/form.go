package signup

import (
	"errors"
	"fmt"
)

// Field is one named input slot on the sign-up form. Values match the keys
// the backend uses in its validation error payload.
type Field string

const (
	FieldUsername       Field = "username"
	FieldEmail          Field = "email"
	FieldPassword       Field = "password"
	FieldPasswordRepeat Field = "passwordRepeat"
)

// Fields lists every form field in layout order.
func Fields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldPasswordRepeat}
}

func knownField(name Field) bool {
	switch name {
	case FieldUsername, FieldEmail, FieldPassword, FieldPasswordRepeat:
		return true
	}
	return false
}

// Status is the submission lifecycle. Succeeded is terminal.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

var (
	// ErrInFlight signals that a submission is already outstanding.
	ErrInFlight = errors.New("signup: submission already in flight")
	// ErrSucceeded signals that the form has reached its terminal state.
	ErrSucceeded = errors.New("signup: sign up already succeeded")
	// ErrNotSubmittable signals that client-side validation blocks the submit.
	ErrNotSubmittable = errors.New("signup: form is not submittable")
)

// Form owns the raw field values, the submission lifecycle and the per-field
// messages from the most recent failed submission. It is not safe for
// concurrent use; the TUI event loop serializes all access.
type Form struct {
	values map[Field]string
	errors map[Field]string
	status Status
}

func NewForm() *Form {
	return &Form{
		values: make(map[Field]string),
		errors: make(map[Field]string),
	}
}

// SetField records a new value for a field. Editing a field dismisses that
// field's server error and no other. An unknown field name is a programming
// error and panics.
func (f *Form) SetField(name Field, value string) {
	if !knownField(name) {
		panic(fmt.Sprintf("signup: unknown field %q", name))
	}
	f.values[name] = value
	delete(f.errors, name)
}

// Value returns the current value of a field.
func (f *Form) Value(name Field) string { return f.values[name] }

// Status returns the current submission status.
func (f *Form) Status() Status { return f.status }

// FieldError returns the server message displayed for a field, if any.
func (f *Form) FieldError(name Field) (string, bool) {
	msg, ok := f.errors[name]
	return msg, ok
}

// BeginSubmit moves the form from Idle to Submitting and clears every field
// error. It reports ErrInFlight while a submission is outstanding, which is
// the guarantee that at most one request is ever in flight.
func (f *Form) BeginSubmit() error {
	switch f.status {
	case StatusSubmitting:
		return ErrInFlight
	case StatusSucceeded:
		return ErrSucceeded
	}
	f.status = StatusSubmitting
	clear(f.errors)
	return nil
}

// CompleteSuccess moves the form from Submitting to Succeeded. There is no
// transition out of Succeeded.
func (f *Form) CompleteSuccess() {
	if f.status != StatusSubmitting {
		return
	}
	f.status = StatusSucceeded
}

// CompleteFailure returns the form to Idle and replaces the displayed field
// messages with the given ones. A stale completion arriving after the form
// has succeeded is ignored.
func (f *Form) CompleteFailure(fieldErrors map[Field]string) {
	if f.status != StatusSubmitting {
		return
	}
	f.status = StatusIdle
	clear(f.errors)
	for name, msg := range fieldErrors {
		if knownField(name) && msg != "" {
			f.errors[name] = msg
		}
	}
}
