// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// End-to-end test: title list → CrossRef lookup → candidate filtering →
// RIS output, using a mock CrossRef server.

package resolve

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsbywhc/title2ris/internal/crossref"
	"github.com/jsbywhc/title2ris/internal/ris"
	"github.com/jsbywhc/title2ris/pkg/types"
)

const kuhnWorksJSON = `{
  "message": {
    "total-results": 1,
    "items": [
      {
        "title": ["The structure of scientific revolutions"],
        "author": [{"given": "T.", "family": "Kuhn"}],
        "container-title": ["University of Chicago Press"],
        "published-print": {"date-parts": [[1962]]},
        "DOI": "10.1234/ssr"
      }
    ]
  }
}`

const supplementFirstJSON = `{
  "message": {
    "total-results": 2,
    "items": [
      {
        "title": ["Supplementary Information"],
        "DOI": "10.9999/si"
      },
      {
        "title": ["Attention Is All You Need"],
        "author": [{"given": "Ashish", "family": "Vaswani"}],
        "container-title": ["NeurIPS"],
        "published-print": {"date-parts": [[2017]]},
        "DOI": "10.5555/attention"
      }
    ]
  }
}`

func TestPipeline_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "The structure of scientific revolutions":
			w.Write([]byte(kuhnWorksJSON))
		case "Attention Is All You Need":
			w.Write([]byte(supplementFirstJSON))
		default:
			w.Write([]byte(`{"message": {"total-results": 0, "items": []}}`))
		}
	}))
	defer ts.Close()

	client := &crossref.Client{
		HTTP:      ts.Client(),
		BaseURL:   ts.URL,
		UserAgent: "title2ris-test/0.0",
		Rows:      2,
	}

	titles := []string{
		"The structure of scientific revolutions",
		"Attention Is All You Need",
		"An unknown manuscript",
	}

	pool := &Pool{
		Workers: 3,
		Resolver: &Resolver{
			Query:        client.Search,
			Filter:       NewFilter(types.DefaultSkipTitles),
			Limiter:      NewLimiter(100, 3),
			MaxAttempts:  3,
			RetryInitial: time.Millisecond,
			RetryMax:     2 * time.Millisecond,
		},
	}

	results := pool.Run(context.Background(), titles)

	var records []types.Candidate
	for _, e := range results.Snapshot() {
		if e.Outcome.Status == StatusResolved {
			records = append(records, *e.Outcome.Candidate)
		}
	}
	require.Len(t, records, 2)

	// The supplementary first hit was skipped for the second ranked one.
	assert.Equal(t, "10.5555/attention", records[1].DOI)

	var buf bytes.Buffer
	require.NoError(t, ris.Write(&buf, records))

	wantFirstBlock := "TY  - JOUR\n" +
		"TI  - The structure of scientific revolutions\n" +
		"AU  - Kuhn, T.\n" +
		"JF  - University of Chicago Press\n" +
		"PY  - 1962\n" +
		"DO  - 10.1234/ssr\n" +
		"ER  - \n"
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(wantFirstBlock)),
		"output does not start with expected block:\n%s", buf.String())

	s := results.Summary()
	assert.Equal(t, Summary{Resolved: 2, NotFound: 1}, s)
}

func TestPipeline_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(kuhnWorksJSON))
	}))
	defer ts.Close()

	client := &crossref.Client{HTTP: ts.Client(), BaseURL: ts.URL, UserAgent: "t"}

	pool := &Pool{
		Workers: 1,
		Resolver: &Resolver{
			Query:        client.Search,
			Filter:       NewFilter(nil),
			MaxAttempts:  3,
			RetryInitial: time.Millisecond,
			RetryMax:     2 * time.Millisecond,
		},
	}

	results := pool.Run(context.Background(), []string{"The structure of scientific revolutions"})

	snap := results.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, StatusResolved, snap[0].Outcome.Status)
	assert.Equal(t, 3, snap[0].Outcome.Attempts)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
