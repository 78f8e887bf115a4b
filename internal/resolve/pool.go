// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// DefaultWorkers is the worker count when none is configured.
const DefaultWorkers = 4

// Job is one queued title with its original input position.
type Job struct {
	Pos   int
	Title string
}

// Pool is a fixed-size set of concurrent resolution workers. Workers share
// only the resolver's rate limiter and the disjoint-slot result table.
type Pool struct {
	Workers  int
	Resolver *Resolver

	// Progress receives one status line per finished title; the pool
	// serializes writes to it. Nil discards progress output.
	Progress io.Writer
}

// Run resolves all titles and returns the result table. On context
// cancellation workers finish their in-flight attempt, stop claiming new
// titles, and Run returns the partial table; already-recorded outcomes
// are never lost.
func (p *Pool) Run(ctx context.Context, titles []string) *Results {
	results := NewResults(len(titles))

	jobs := make(chan Job, len(titles))
	for i, t := range titles {
		jobs <- Job{Pos: i, Title: t}
	}
	close(jobs)

	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(titles) {
		workers = len(titles)
	}

	var progressMu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				// Cancellation is observed here, before claiming a title.
				select {
				case <-ctx.Done():
					return
				default:
				}

				job, ok := <-jobs
				if !ok {
					return
				}

				out, err := p.Resolver.Resolve(ctx, job.Title)
				if err != nil {
					// Cancelled mid-flight; nothing terminal to record.
					return
				}
				results.Record(job.Pos, out)

				if p.Progress != nil {
					progressMu.Lock()
					reportOutcome(p.Progress, job, out)
					progressMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return results
}

// reportOutcome writes one per-title status line.
func reportOutcome(w io.Writer, job Job, out Outcome) {
	switch out.Status {
	case StatusResolved:
		fmt.Fprintf(w, "resolved:  %s (doi %s)\n", job.Title, out.Candidate.DOI)
	case StatusNotFound:
		if out.Reason == ReasonAllSpecial {
			fmt.Fprintf(w, "not found: %s (only special matches)\n", job.Title)
		} else {
			fmt.Fprintf(w, "not found: %s (no results)\n", job.Title)
		}
	case StatusFailed:
		fmt.Fprintf(w, "failed:    %s (%s after %d attempt(s): %v)\n", job.Title, out.Kind, out.Attempts, out.Err)
	}
}
