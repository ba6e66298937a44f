// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pdiddy/paperlist/internal/httputil"
	"github.com/pdiddy/paperlist/pkg/types"
)

// SummaryResponse is the parsed esummary payload. Documents are keyed by
// paper ID under result; the raw entries stay undecoded until Doc is
// called so that one malformed document never fails the response.
type SummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// Doc is the per-paper summary document.
type Doc struct {
	Title   string         `json:"title"`
	PubDate string         `json:"pubdate"`
	Authors []types.Author `json:"authors"`
}

// Doc returns the summary document for id. A missing or malformed entry
// yields a zero Doc; the extractor applies field defaults on top.
func (r SummaryResponse) Doc(id string) Doc {
	var d Doc
	if raw, ok := r.Result[id]; ok {
		// Decode failure leaves the zero value, same as an absent entry.
		_ = json.Unmarshal(raw, &d)
	}
	return d
}

// Summary fetches the esummary document set for one paper ID. The raw
// response body is copied to the client's debug writer on every call.
// Non-2xx statuses are fatal.
func (c *Client) Summary(ctx context.Context, id string, cfg types.PubMedConfig) (SummaryResponse, error) {
	params := url.Values{
		"db":      {database},
		"id":      {id},
		"retmode": {"json"},
	}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}

	var sr SummaryResponse
	body, err := httputil.GetJSON(ctx, c.HTTP, esummaryBase+"?"+params.Encode(), cfg.UserAgent, &sr)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("PubMed esummary for %s: %w", id, err)
	}

	fmt.Fprintf(c.debug(), "esummary response for %s: %s\n", id, body)

	return sr, nil
}
