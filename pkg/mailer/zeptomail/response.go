package zeptomail

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxResponseBody caps how much of a response body is read.
const maxResponseBody = 1 << 20

// Response is the accepted outcome of a send.
type Response struct {
	StatusCode int            // HTTP status code (2xx)
	RequestID  string         // "request_id" from the body, when present
	Data       map[string]any // Parsed body, or {"raw": text} when it was not a JSON object
}

// parseBody decodes a JSON object. Anything else, including malformed JSON,
// is wrapped as {"raw": text}; it never fails.
func parseBody(body []byte) map[string]any {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return map[string]any{"raw": string(body)}
	}
	return data
}

// errorMessage picks a human-readable message from a failure body:
// "message", then "error" (a string or an object with its own "message"),
// then DefaultErrorMessage.
func errorMessage(data map[string]any) string {
	if msg, ok := data["message"].(string); ok && msg != "" {
		return msg
	}
	switch v := data["error"].(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return DefaultErrorMessage
}

// readBody reads at most maxResponseBody bytes. On failure the bytes read so
// far are returned together with the error.
func readBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, nil
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
}

// classify turns a completed exchange into a Response or an *APIError.
// readErr is a failure reading the body after the status line arrived.
func classify(resp *http.Response, body []byte, readErr error) (*Response, error) {
	data := parseBody(body)

	if readErr != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "reading response body: " + readErr.Error(),
			Body:       string(body),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
			Body:       string(body),
		}
	}

	result := &Response{StatusCode: resp.StatusCode, Data: data}
	if id, ok := data["request_id"].(string); ok {
		result.RequestID = id
	}
	return result, nil
}

// classifyTransportError handles an error returned by the HTTP client.
// Without a response the request never completed: *ConnectionError.
// With one, the exchange broke part way: *APIError with whatever was captured.
func classifyTransportError(resp *http.Response, err error) error {
	if resp == nil {
		return &ConnectionError{Err: err}
	}

	body, _ := readBody(resp)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    err.Error(),
		Body:       string(body),
	}
}
