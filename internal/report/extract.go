// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report orchestrates the fetch pipeline and serializes results.
package report

import (
	"strings"

	"github.com/pdiddy/paperlist/internal/classify"
	"github.com/pdiddy/paperlist/internal/pubmed"
	"github.com/pdiddy/paperlist/pkg/types"
)

// RecordFromDoc normalizes one esummary document into an output row.
// Absent title and pubdate fall back to "Unknown"; absent authors yield
// an empty non-academic list. The company-affiliation and email columns
// are emitted empty: extraction does not populate them.
func RecordFromDoc(id string, doc pubmed.Doc) types.PaperRecord {
	title := doc.Title
	if title == "" {
		title = types.UnknownField
	}
	pubDate := doc.PubDate
	if pubDate == "" {
		pubDate = types.UnknownField
	}

	return types.PaperRecord{
		PubmedID:           id,
		Title:              title,
		PublicationDate:    pubDate,
		NonAcademicAuthors: strings.Join(classify.NonAcademicAuthors(doc.Authors), ", "),
	}
}
