// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pdiddy/paperlist/internal/httputil"
	"github.com/pdiddy/paperlist/pkg/types"
)

// defaultMaxResults is the esearch retmax when the config leaves it unset.
const defaultMaxResults = 10

// SearchIDs queries esearch for papers matching query and returns the ID
// list in response order. A response without an esearchresult.idlist path
// yields an empty list, not an error. Non-2xx statuses are fatal.
func (c *Client) SearchIDs(ctx context.Context, query string, cfg types.PubMedConfig) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("empty PubMed query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"db":      {database},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
	}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}

	var er esearchResponse
	if _, err := httputil.GetJSON(ctx, c.HTTP, esearchBase+"?"+params.Encode(), cfg.UserAgent, &er); err != nil {
		return nil, fmt.Errorf("PubMed esearch: %w", err)
	}

	return er.ESearchResult.IDList, nil
}

// esearch API JSON structures. Missing keys decode to zero values, which
// gives SearchIDs its empty-list-on-absent-path behavior.
type esearchResponse struct {
	ESearchResult esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	RetMax string   `json:"retmax"`
	IDList []string `json:"idlist"`
}
