// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify flags non-academic author affiliations via keyword matching.
package classify

import (
	"strings"

	"github.com/pdiddy/paperlist/pkg/types"
)

// academicKeywords mark an affiliation as academic when any of them occurs
// anywhere in the text, case-insensitively. Matching is substring-based on
// purpose: "Universitypark Labs" still counts as academic.
var academicKeywords = []string{
	"university",
	"college",
	"institute",
	"hospital",
	"school",
}

// NonAcademicAuthors returns the names of authors whose affiliation is
// present and matches none of the academic keywords, in input order.
// Authors with an empty affiliation are skipped, never flagged. An absent
// name is reported as "Unknown".
func NonAcademicAuthors(authors []types.Author) []string {
	var names []string
	for _, a := range authors {
		if a.Affiliation == "" {
			continue
		}
		if isAcademic(a.Affiliation) {
			continue
		}
		names = append(names, a.DisplayName())
	}
	return names
}

func isAcademic(affiliation string) bool {
	lower := strings.ToLower(affiliation)
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
