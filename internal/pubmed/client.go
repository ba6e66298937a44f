// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API for paper IDs and
// per-paper summary metadata.
package pubmed

import (
	"io"
	"net/http"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
)

// database is the E-utilities db parameter.
const database = "pubmed"

// Client calls the PubMed esearch and esummary endpoints.
type Client struct {
	HTTP *http.Client

	// Debug receives the raw esummary response body for every call.
	// Leave nil to discard.
	Debug io.Writer
}

func (c *Client) debug() io.Writer {
	if c.Debug == nil {
		return io.Discard
	}
	return c.Debug
}
