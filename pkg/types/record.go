// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the title2ris pipeline.
package types

// Author is a single contributor name in family/given form, as returned
// by the CrossRef API.
type Author struct {
	// Family is the family (last) name.
	Family string `json:"family" yaml:"family"`

	// Given is the given (first) name, possibly abbreviated. May be empty.
	Given string `json:"given,omitempty" yaml:"given,omitempty"`
}

// String renders the author as "Family, Given", or just the family name
// when no given name is known. This is the form RIS AU lines use.
func (a Author) String() string {
	if a.Given == "" {
		return a.Family
	}
	return a.Family + ", " + a.Given
}

// Candidate is one ranked search hit from the metadata service. Fields
// beyond title/authors/journal/year/DOI are optional and omitted from
// output when empty.
type Candidate struct {
	// Title is the work's title as returned by the service.
	Title string `json:"title" yaml:"title"`

	// Authors lists contributors in source order. May be empty.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Journal is the full container/journal title.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// JournalAbbrev is the short container title, when the service has one.
	JournalAbbrev string `json:"journal_abbrev,omitempty" yaml:"journal_abbrev,omitempty"`

	// Abstract is the work's abstract, when available.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Year is the publication year; zero when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Volume, Issue, and Pages locate the work within the journal.
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue  string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages  string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// DOI is the bare persistent identifier (no https://doi.org/ prefix).
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// ISSN is the journal's first listed ISSN.
	ISSN string `json:"issn,omitempty" yaml:"issn,omitempty"`

	// Publisher is the publisher name.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}
