// Package llamaparse is a client for the LlamaParse cloud API. It uploads a
// PDF, polls the job until the service reports a terminal state, and returns
// the extracted text or markdown as a Document.
package llamaparse

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client submits files to the parsing API and retrieves results. A Client is
// safe for concurrent use; each LoadData call owns its own job state.
type Client struct {
	apiKey        string
	baseURL       string
	resultType    ResultType
	checkInterval time.Duration
	maxTimeout    time.Duration
	verbose       bool
	logger        *log.Logger
	client        *http.Client
}

// New builds a Client from cfg, resolving environment fallbacks and applying
// defaults. It fails when no API key can be found.
func New(cfg Config) (*Client, error) {
	resolved, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		apiKey:        resolved.APIKey,
		baseURL:       resolved.BaseURL,
		resultType:    resolved.ResultType,
		checkInterval: resolved.CheckInterval,
		maxTimeout:    resolved.MaxTimeout,
		verbose:       resolved.Verbose,
		logger:        resolved.Logger,
		client:        &http.Client{Timeout: resolved.MaxTimeout},
	}, nil
}

// LoadData parses the PDF at filePath and blocks until the job reaches a
// terminal state. extraInfo, if non-nil, is merged into the document metadata.
func (c *Client) LoadData(filePath string, extraInfo map[string]any) ([]*Document, error) {
	return c.LoadDataContext(context.Background(), filePath, extraInfo)
}

// LoadDataContext is LoadData with cancellation. Canceling ctx aborts the
// in-flight request or the wait between status checks.
func (c *Client) LoadDataContext(ctx context.Context, filePath string, extraInfo map[string]any) ([]*Document, error) {
	if !strings.HasSuffix(filePath, ".pdf") {
		return nil, &UnsupportedFormatError{Path: filePath}
	}

	// Correlation id for this invocation, echoed on every request.
	requestID := uuid.NewString()

	jobID, err := c.upload(ctx, filePath, requestID)
	if err != nil {
		return nil, err
	}
	if c.verbose {
		c.logger.Printf("started parsing %s under job_id %s", filePath, jobID)
	}

	job := &parseJob{id: jobID, startedAt: time.Now()}
	body, err := c.poll(ctx, job, requestID)
	if err != nil {
		return nil, err
	}

	doc, err := c.extractResult(body, filePath, extraInfo)
	if err != nil {
		return nil, err
	}
	return []*Document{doc}, nil
}
