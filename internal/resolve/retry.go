// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"errors"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"

	"github.com/jsbywhc/title2ris/internal/crossref"
	"github.com/jsbywhc/title2ris/pkg/types"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryInitial = 1 * time.Second
	defaultRetryMax     = 30 * time.Second
)

// State is a phase of one title's resolution. Each title moves
// Pending → Attempting → {Retrying → Attempting}* until a terminal Outcome.
type State int

const (
	StatePending State = iota
	StateAttempting
	StateRetrying
)

// QueryFunc performs one title lookup. Production code uses
// (*crossref.Client).Search; tests substitute stubs.
type QueryFunc func(ctx context.Context, title string) ([]types.Candidate, error)

// Resolver drives one title from Pending to a terminal outcome: query
// under the shared rate limiter, filter the candidates, and retry
// retryable failures with jittered exponential backoff. Failure handling
// is fully per-title; one title exhausting its retries never affects
// another.
type Resolver struct {
	Query   QueryFunc
	Filter  *Filter
	Limiter *Limiter

	// MaxAttempts is the total attempt budget including the first try
	// (default 3).
	MaxAttempts int

	// RetryInitial and RetryMax bound the backoff delay between attempts
	// (defaults 1s, 30s).
	RetryInitial time.Duration
	RetryMax     time.Duration
}

// Resolve runs the retry state machine for one title. The returned error
// is non-nil only when the context was cancelled before a terminal
// outcome was reached; the caller then records nothing for this title.
func (r *Resolver) Resolve(ctx context.Context, title string) (Outcome, error) {
	maxAttempts := r.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	initial := r.RetryInitial
	if initial <= 0 {
		initial = defaultRetryInitial
	}
	max := r.RetryMax
	if max <= 0 {
		max = defaultRetryMax
	}

	bo := boff.New(initial, max, time.Now().UnixNano())

	state := StatePending
	attempts := 0
	var lastKind crossref.ErrorKind
	var lastErr error

	for {
		switch state {
		case StatePending:
			state = StateAttempting

		case StateAttempting:
			attempts++
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx); err != nil {
					return Outcome{}, err
				}
			}

			candidates, err := r.Query(ctx, title)
			if err == nil {
				if cand, reason := r.Filter.Select(candidates); cand != nil {
					return Outcome{Status: StatusResolved, Candidate: cand, Attempts: attempts}, nil
				} else {
					return Outcome{Status: StatusNotFound, Reason: reason, Attempts: attempts}, nil
				}
			}
			if ctx.Err() != nil {
				return Outcome{}, ctx.Err()
			}

			lastKind, lastErr = classify(err), err
			if !lastKind.Retryable() || attempts >= maxAttempts {
				return Outcome{Status: StatusFailed, Kind: lastKind, Err: lastErr, Attempts: attempts}, nil
			}
			state = StateRetrying

		case StateRetrying:
			timer := time.NewTimer(bo.Next())
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return Outcome{}, ctx.Err()
			}
			state = StateAttempting
		}
	}
}

// classify maps a lookup error to its taxonomy kind. Untyped errors count
// as malformed responses: not retryable.
func classify(err error) crossref.ErrorKind {
	var reqErr *crossref.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return crossref.MalformedResponse
}
