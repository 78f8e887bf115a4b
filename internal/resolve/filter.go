// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"strings"

	"github.com/jsbywhc/title2ris/pkg/types"
)

// lookahead is the number of ranked candidates inspected before giving up.
// Inspecting further would trade a special-title hit for an increasingly
// irrelevant one, so the window stays small.
const lookahead = 2

// Filter skips non-substantive search hits (supplementary information,
// frontispieces, cover art) during candidate selection.
type Filter struct {
	patterns []string
}

// NewFilter returns a filter matching candidate titles against patterns,
// case-insensitively and by substring. A nil or empty pattern list means
// nothing is special.
func NewFilter(patterns []string) *Filter {
	f := &Filter{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			f.patterns = append(f.patterns, strings.ToLower(p))
		}
	}
	return f
}

// Special reports whether title denotes a non-substantive document.
func (f *Filter) Special(title string) bool {
	lower := strings.ToLower(title)
	for _, p := range f.patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Select returns the best eligible candidate from the ranked sequence, or
// nil with the reason no candidate qualified: ReasonNoResults for an empty
// sequence, ReasonAllSpecial when the lookahead window held only special
// titles.
func (f *Filter) Select(candidates []types.Candidate) (*types.Candidate, NotFoundReason) {
	if len(candidates) == 0 {
		return nil, ReasonNoResults
	}
	n := len(candidates)
	if n > lookahead {
		n = lookahead
	}
	for i := 0; i < n; i++ {
		if !f.Special(candidates[i].Title) {
			return &candidates[i], ""
		}
	}
	return nil, ReasonAllSpecial
}
