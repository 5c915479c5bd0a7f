// Package api talks to the hoaxify user backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexislopes/hoaxify-tui/internal/signup"
)

const usersPath = "/api/1.0/users"

// Client submits account-creation requests. It implements signup.Submitter.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		timeout: timeout,
	}
}

// validationEnvelope is the backend's error body for 4xx responses:
// {"validationErrors": {"username": "Username cannot be null"}}.
type validationEnvelope struct {
	ValidationErrors map[string]string `json:"validationErrors"`
}

// CreateUser posts the payload with the raw language tag as Accept-Language
// and a fresh X-Request-Id. Any response without a structured validation
// payload collapses to a transport failure; the caller returns the form to
// idle with no field messages in that case.
func (c *Client) CreateUser(ctx context.Context, payload signup.Payload, lang string) signup.Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return signup.Outcome{Kind: signup.OutcomeTransportFailed}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+usersPath, bytes.NewReader(body))
	if err != nil {
		return signup.Outcome{Kind: signup.OutcomeTransportFailed}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", lang)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("create user: %v", err)
		return signup.Outcome{Kind: signup.OutcomeTransportFailed}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return signup.Outcome{Kind: signup.OutcomeCreated}
	}

	var envelope validationEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || len(envelope.ValidationErrors) == 0 {
		log.Printf("create user: status %d with no validation payload", resp.StatusCode)
		return signup.Outcome{Kind: signup.OutcomeTransportFailed}
	}

	fieldErrors := make(map[signup.Field]string, len(envelope.ValidationErrors))
	for name, msg := range envelope.ValidationErrors {
		fieldErrors[signup.Field(name)] = msg
	}
	return signup.Outcome{Kind: signup.OutcomeValidationFailed, FieldErrors: fieldErrors}
}
