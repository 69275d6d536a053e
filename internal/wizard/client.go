package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jmagwili/launchpad-jia/internal/controller/career"
	"github.com/jmagwili/launchpad-jia/internal/model"
	"github.com/jmagwili/launchpad-jia/internal/utilities"
)

// RequestRejected is a 4xx from the career API. The message is surfaced to
// the recruiter verbatim.
type RequestRejected struct {
	Code    string
	Message string
}

func (e *RequestRejected) Error() string {
	return e.Message
}

// IsQuotaExceeded reports whether err is a rejection for hitting the plan's
// job ceiling.
func IsQuotaExceeded(err error) bool {
	rejected, ok := err.(*RequestRejected)
	return ok && rejected.Code == utilities.CodeQuotaExceeded
}

// TransportFailure is a network fault or a 5xx. The wizard shows a generic
// failure message and keeps its state for a retry.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err)
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// Client submits careers over HTTP. It implements Submitter.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClient builds a Client against the given API base URL with a bearer
// token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Create posts a new career and returns the persisted record, identity
// included.
func (c *Client) Create(req career.CreateCareerRequest) (*model.Career, error) {
	return c.submit(http.MethodPost, c.BaseURL+"/api/v1/career", req)
}

// Update patches an existing career.
func (c *Client) Update(id uuid.UUID, req career.UpdateCareerRequest) (*model.Career, error) {
	return c.submit(http.MethodPatch, fmt.Sprintf("%s/api/v1/career/%s", c.BaseURL, id), req)
}

func (c *Client) submit(method, url string, payload interface{}) (*model.Career, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportFailure{Err: err}
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportFailure{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var result struct {
			Message string       `json:"message"`
			Career  model.Career `json:"career"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, &TransportFailure{Err: err}
		}
		return &result.Career, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var rejection utilities.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&rejection); err != nil || rejection.Error == "" {
			rejection.Error = fmt.Sprintf("request rejected with status %d", resp.StatusCode)
		}
		return nil, &RequestRejected{Code: rejection.Code, Message: rejection.Error}

	default:
		return nil, &TransportFailure{Err: fmt.Errorf("server returned status %d", resp.StatusCode)}
	}
}
