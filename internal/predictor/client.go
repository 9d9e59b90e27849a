// Package predictor is the client for the remote prediction service. The
// service is a black box to this tool: vitals go out, risk flags and an
// explanation list come back. Every way the exchange can fail - transport
// error, non-success status, undecodable body - collapses into a RemoteError
// so callers have a single notice to surface and no partial state to unwind.
package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vitaldeck/internal/logging"
	"vitaldeck/internal/patient"
)

// PredictPath is the prediction endpoint on the configured server.
const PredictPath = "/predict"

// RemoteError reports a failed prediction exchange. StatusCode is zero when
// the request never produced a response.
type RemoteError struct {
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prediction service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("prediction service unreachable: %v", e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client talks to the prediction service. No retries are performed; a failed
// submission requires a fresh user-initiated attempt.
type Client struct {
	http *resty.Client
}

// New creates a client for the given base URL with the given request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// Predict submits the vitals and returns the service's assessment. The flags
// and explanations pass through untouched; this client never reinterprets
// them.
func (c *Client) Predict(ctx context.Context, in patient.Input) (patient.Assessment, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "predict")
	defer timer.Stop()

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		Post(PredictPath)
	if err != nil {
		logging.APIError("predict request failed: %v", err)
		return patient.Assessment{}, &RemoteError{Err: err}
	}

	if !res.IsSuccess() {
		logging.APIError("predict returned status %d: %s", res.StatusCode(), res.String())
		return patient.Assessment{}, &RemoteError{StatusCode: res.StatusCode()}
	}

	var assessment patient.Assessment
	if err := json.Unmarshal(res.Body(), &assessment); err != nil {
		logging.APIError("predict response undecodable: %v", err)
		return patient.Assessment{}, &RemoteError{Err: fmt.Errorf("malformed response body: %w", err)}
	}

	logging.API("predict ok: %d high-risk flags", len(assessment.HighRisks()))
	return assessment, nil
}

// Submit runs one full prediction round-trip: it sends the vitals and, on
// success, stamps the current local time into a new session record. On failure
// no session exists and nothing has been mutated.
func (c *Client) Submit(ctx context.Context, in patient.Input) (patient.Session, error) {
	assessment, err := c.Predict(ctx, in)
	if err != nil {
		return patient.Session{}, err
	}
	s := patient.NewSession(in, assessment)
	logging.Session("session %s created for %q", s.ID, s.Input.Name)
	return s, nil
}
