// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter bounds the aggregate request rate across all workers. It is a
// token bucket with continuous refill: capacity burst, refill perSecond
// tokens per second. One instance is owned by the run and shared by
// handle with every worker.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter returns a limiter allowing perSecond sustained requests per
// second with bursts up to burst. Non-positive values default to 1.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait suspends the caller until a token is available and commits it, or
// returns ctx.Err() if the context is cancelled first.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}
