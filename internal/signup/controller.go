package signup

import "context"

// Payload is the account-creation request body. The repeat field never
// leaves the client.
type Payload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OutcomeKind classifies the result of one submission attempt.
type OutcomeKind int

const (
	// OutcomeCreated is any 2xx response.
	OutcomeCreated OutcomeKind = iota
	// OutcomeValidationFailed carries per-field messages from the backend.
	OutcomeValidationFailed
	// OutcomeTransportFailed is a network error or a response with no
	// structured validation payload.
	OutcomeTransportFailed
)

// Outcome is the result of one submission attempt.
type Outcome struct {
	Kind        OutcomeKind
	FieldErrors map[Field]string
}

// Submitter is the external account-creation collaborator. The language tag
// travels as the Accept-Language header, raw and unnegotiated.
type Submitter interface {
	CreateUser(ctx context.Context, payload Payload, lang string) Outcome
}

// Controller serializes submissions over a Form. Between a successful
// Submit and its matching Resolve exactly one request is outstanding;
// a second Submit in that window fails with ErrInFlight.
type Controller struct {
	form   *Form
	client Submitter
}

func NewController(form *Form, client Submitter) *Controller {
	return &Controller{form: form, client: client}
}

// Form returns the form this controller drives.
func (c *Controller) Form() *Form { return c.form }

// Submit gates and freezes one submission attempt. On success it returns a
// function that performs the network call; the payload and language tag are
// captured here, so field edits made while the request is outstanding do
// not alter it. The returned function is safe to run off the event loop.
func (c *Controller) Submit(ctx context.Context, lang string) (func() Outcome, error) {
	if c.form.Status() == StatusIdle && !Submittable(c.form) {
		return nil, ErrNotSubmittable
	}
	if err := c.form.BeginSubmit(); err != nil {
		return nil, err
	}
	payload := Payload{
		Username: c.form.Value(FieldUsername),
		Email:    c.form.Value(FieldEmail),
		Password: c.form.Value(FieldPassword),
	}
	client := c.client
	return func() Outcome {
		return client.CreateUser(ctx, payload, lang)
	}, nil
}

// Resolve applies one attempt's outcome to the form. A transport failure
// returns the form to Idle with no field messages; there is no field to
// attach an actionable message to.
func (c *Controller) Resolve(out Outcome) {
	switch out.Kind {
	case OutcomeCreated:
		c.form.CompleteSuccess()
	case OutcomeValidationFailed:
		c.form.CompleteFailure(out.FieldErrors)
	default:
		c.form.CompleteFailure(nil)
	}
}
