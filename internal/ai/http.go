package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// aiClient is the shared HTTP client for provider requests. Transport-level
// timeouts protect against unreachable servers; the per-request deadline is
// applied via context in postJSON.
var aiClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
	},
}

// postJSON sends a JSON request bounded by timeout and decodes the reply
// into result. A body that is not strictly valid JSON gets one more chance:
// the last balanced top-level JSON object in the text is extracted and
// parsed before giving up. Errors include a truncated view of the raw body.
func postJSON(ctx context.Context, url string, body any, headers map[string]string, timeout time.Duration, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := aiClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, snippet(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		if obj := lastJSONObject(respBody); obj != nil {
			if json.Unmarshal(obj, result) == nil {
				return nil
			}
		}
		return fmt.Errorf("bad JSON: %s", snippet(respBody))
	}
	return nil
}

// lastJSONObject scans b for the last balanced top-level {...} object,
// honoring string and escape state. Returns nil when none exists.
func lastJSONObject(b []byte) []byte {
	var start, end = -1, -1
	depth := 0
	inString := false
	escaped := false
	candidate := -1

	for i, c := range b {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				candidate = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					start, end = candidate, i+1
				}
			}
		}
	}

	if start < 0 || end <= start {
		return nil
	}
	return b[start:end]
}

// snippet returns a bounded view of a raw body for diagnostics.
func snippet(b []byte) string {
	const max = 200
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
