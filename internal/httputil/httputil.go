// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GetJSON issues a GET request to rawURL with the given User-Agent, reads
// the full response body, and decodes it as JSON into v. It returns the
// raw body so callers can dump it to a diagnostic stream.
//
// A transport error or a non-2xx status is returned as an error; the
// caller is expected to abort on it. Decoding is skipped when v is nil.
func GetJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, v any) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return body, fmt.Errorf("parsing response: %w", err)
		}
	}
	return body, nil
}
