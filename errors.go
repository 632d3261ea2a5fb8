package llamaparse

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingAPIKey is returned by New when no API key is supplied and the
	// LLAMA_CLOUD_API_KEY environment variable is unset.
	ErrMissingAPIKey = errors.New("the API key is required")

	// ErrInvalidResultType is returned by New for a result type other than
	// "text" or "markdown".
	ErrInvalidResultType = errors.New("invalid result type")
)

// UnsupportedFormatError indicates the input path does not name a PDF file.
// It is raised before any network activity.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("currently only PDF files are supported, got %q", e.Path)
}

// UploadError indicates the upload request failed, was rejected by the
// service, or returned a body without a job id.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %v", e.Err)
	}
	return fmt.Sprintf("upload failed (status %d): %s", e.StatusCode, e.Body)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates polling exceeded the configured ceiling before the
// job reached a terminal state. LastBody is the last raw status response seen.
type TimeoutError struct {
	Elapsed  time.Duration
	LastBody string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for parsing to finish: %s", e.Elapsed, e.LastBody)
}

// RemoteParseError is the service's terminal rejection of a job (HTTP 400).
type RemoteParseError struct {
	Detail string
}

func (e *RemoteParseError) Error() string {
	return fmt.Sprintf("failed to parse the file: %s", e.Detail)
}

// ResultExtractionError indicates the terminal success response did not carry
// the requested result field.
type ResultExtractionError struct {
	Field string
}

func (e *ResultExtractionError) Error() string {
	return fmt.Sprintf("parsing result missing %q field", e.Field)
}
