// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperlist pipeline.
package types

// UnknownField is the sentinel used when PubMed omits a metadata field.
const UnknownField = "Unknown"

// Author is a single author entry from a PubMed esummary document.
type Author struct {
	// Name is the author name as returned by PubMed (e.g. "Smith J").
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text institutional affiliation. PubMed
	// omits it for most summary records, in which case it is empty.
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// DisplayName returns the author name, or the Unknown sentinel when the
// name is absent.
func (a Author) DisplayName() string {
	if a.Name == "" {
		return UnknownField
	}
	return a.Name
}

// PaperRecord is one output row of the results CSV.
type PaperRecord struct {
	// PubmedID is the opaque identifier returned by esearch.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the paper title, or "Unknown" when absent.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the pubdate string as PubMed reports it
	// (e.g. "2024 Mar 15"), or "Unknown" when absent.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors is the comma-joined list of author names whose
	// affiliation text did not match any academic keyword.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is always empty. The column exists in the
	// output format but extraction does not populate it.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingAuthorEmail is always empty. Same placeholder status
	// as CompanyAffiliations.
	CorrespondingAuthorEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}
