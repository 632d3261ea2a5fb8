package llamaparse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// pollState tracks where a job is in its lifecycle while the client waits for
// the service.
type pollState int

const (
	statePolling pollState = iota
	stateSucceeded
	stateTimedOut
	stateFailed
)

// parseJob is the per-invocation polling state. It is created after a
// successful upload and never shared between calls.
type parseJob struct {
	id        string
	startedAt time.Time
	attempts  int
}

// classify maps one status response onto the next poll state. 404 means the
// job is still running, 400 is a terminal rejection, and any other status
// carries the finished result. The terminal error, if any, is returned
// alongside the state.
func classify(statusCode int, body []byte, elapsed, budget time.Duration) (pollState, error) {
	switch statusCode {
	case http.StatusNotFound:
		if elapsed > budget {
			return stateTimedOut, &TimeoutError{Elapsed: elapsed.Round(time.Millisecond), LastBody: string(body)}
		}
		return statePolling, nil
	case http.StatusBadRequest:
		return stateFailed, &RemoteParseError{Detail: errorDetail(body)}
	default:
		return stateSucceeded, nil
	}
}

// errorDetail pulls the "detail" field out of a 400 response body, falling
// back to a generic message.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return "unknown error"
	}
	return payload.Detail
}

// poll checks the job status at the configured interval until a terminal
// state and returns the raw success response body. Only the not-ready case is
// retried; 400 and the timeout ceiling both end the job.
func (c *Client) poll(ctx context.Context, job *parseJob, requestID string) ([]byte, error) {
	resultURL := fmt.Sprintf("%s/api/parsing/job/%s/result/%s", c.baseURL, job.id, c.resultType)

	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		statusCode, body, err := c.fetchStatus(ctx, resultURL, requestID)
		if err != nil {
			return nil, err
		}

		state, terminalErr := classify(statusCode, body, time.Since(job.startedAt), c.maxTimeout)
		switch state {
		case statePolling:
			if c.verbose && job.attempts%10 == 0 {
				c.logger.Printf("job %s still parsing (attempt %d)", job.id, job.attempts)
			}
			job.attempts++
		case stateSucceeded:
			return body, nil
		default:
			return nil, terminalErr
		}
	}
}

// wait suspends for one check interval or until ctx is canceled.
func (c *Client) wait(ctx context.Context) error {
	timer := time.NewTimer(c.checkInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) fetchStatus(ctx context.Context, url, requestID string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("checking job status: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading status response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// extractResult pulls the configured result field out of the terminal success
// body and builds the output document.
func (c *Client) extractResult(body []byte, filePath string, extraInfo map[string]any) (*Document, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unmarshaling parsing result: %w", err)
	}

	field := string(c.resultType)
	text, ok := payload[field].(string)
	if !ok {
		return nil, &ResultExtractionError{Field: field}
	}

	metadata := make(map[string]any, len(extraInfo)+1)
	for k, v := range extraInfo {
		metadata[k] = v
	}
	metadata["file_path"] = filePath

	return &Document{Text: text, Metadata: metadata}, nil
}
