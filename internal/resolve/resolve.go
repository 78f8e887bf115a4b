// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve runs the concurrent metadata-resolution pipeline: a fixed
// worker pool pulls titles from a queue, each lookup throttled by a shared
// rate limiter and wrapped in a per-title retry state machine, with
// outcomes recorded at their original input positions.
package resolve

import (
	"github.com/jsbywhc/title2ris/internal/crossref"
	"github.com/jsbywhc/title2ris/pkg/types"
)

// Status is the terminal state of one title's resolution.
type Status string

const (
	// StatusResolved means a non-special candidate was selected.
	StatusResolved Status = "resolved"

	// StatusNotFound means the service had no usable hit: either zero
	// results or only special (non-substantive) ones.
	StatusNotFound Status = "not_found"

	// StatusFailed means the lookup failed terminally, after exhausting
	// retries or on a non-retryable error.
	StatusFailed Status = "failed"
)

// NotFoundReason distinguishes the two NotFound paths for logging. The
// outcome type is the same either way.
type NotFoundReason string

const (
	ReasonNoResults  NotFoundReason = "no_results"
	ReasonAllSpecial NotFoundReason = "all_special"
)

// Outcome is the terminal result of resolving one title.
type Outcome struct {
	Status Status

	// Candidate is the selected hit; set only when Status is StatusResolved.
	Candidate *types.Candidate

	// Reason is set when Status is StatusNotFound.
	Reason NotFoundReason

	// Kind and Err describe the failure when Status is StatusFailed.
	Kind crossref.ErrorKind
	Err  error

	// Attempts is the number of query attempts made, including the final one.
	Attempts int
}
