package paperspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// requestError is a failed call to a Paperspace API. StatusCode is zero for
// transport-level failures; Message carries the provider's error body when
// one was returned.
type requestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *requestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paperspace request failed: %v", e.Err)
	}
	return fmt.Sprintf("paperspace request failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *requestError) Unwrap() error {
	return e.Err
}

// isInvalidAuth reports the statuses the auth probes treat as a rejected
// credential; everything else is optimistic-valid.
func (e *requestError) isInvalidAuth() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnauthorized
}

// errorBody covers the two error envelope shapes the Paperspace APIs use.
type errorBody struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (b errorBody) message() string {
	if b.Error.Message != "" {
		return b.Error.Message
	}
	return b.Message
}

// apiClient issues JSON requests against one Paperspace base URL, attaching
// per-request headers supplied by the caller.
type apiClient struct {
	http    *http.Client
	baseURL string
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, headers http.Header, body any, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &requestError{Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return &requestError{Err: fmt.Errorf("creating request: %w", err)}
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &requestError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &requestError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(payload, &eb)
		return &requestError{
			StatusCode: resp.StatusCode,
			Message:    eb.message(),
		}
	}

	if out != nil {
		if err = json.Unmarshal(payload, out); err != nil {
			return &requestError{Err: fmt.Errorf("decoding response body: %w", err)}
		}
	}
	return nil
}

// requestMessage extracts the provider error message from err, if any.
func requestMessage(err error) string {
	if re, ok := err.(*requestError); ok {
		return re.Message
	}
	return ""
}
