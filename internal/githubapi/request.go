package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// APIError represents an HTTP-level error from the GraphQL endpoint.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// QueryError represents errors returned inside a GraphQL response envelope.
type QueryError struct {
	Items []QueryErrorItem
}

// QueryErrorItem is a single entry of the response "errors" array.
type QueryErrorItem struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *QueryError) Error() string {
	msgs := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		if item.Type != "" {
			msgs = append(msgs, item.Type+": "+item.Message)
		} else {
			msgs = append(msgs, item.Message)
		}
	}
	return "github graphql error: " + strings.Join(msgs, "; ")
}

// IsRetryable returns true if any error entry is a rate limit.
func (e *QueryError) IsRetryable() bool {
	for _, item := range e.Items {
		if item.Type == "RATE_LIMITED" {
			return true
		}
	}
	return false
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage  `json:"data"`
	Errors []QueryErrorItem `json:"errors"`
}

// doRequest performs a single GraphQL POST and decodes the envelope.
func (c *Client) doRequest(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, &QueryError{Items: envelope.Errors}
	}

	return envelope.Data, nil
}

// doWithRetry performs a query with exponential backoff retry.
func (c *Client) doWithRetry(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff/2 + time.Duration(rand.Int64N(int64(backoff)))
			c.logger.Debug("retrying query",
				"attempt", attempt,
				"backoff", jitter,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		data, err := c.doRequest(ctx, query, variables)
		if err == nil {
			return data, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	switch e := err.(type) {
	case *APIError:
		return e.IsRetryable()
	case *QueryError:
		return e.IsRetryable()
	default:
		return false
	}
}

// query runs a GraphQL query with retries and unmarshals the data payload.
func (c *Client) query(ctx context.Context, q string, variables map[string]any, result any) error {
	data, err := c.doWithRetry(ctx, q, variables)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
