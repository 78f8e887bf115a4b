// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref queries the CrossRef works API and parses its ranked
// search results into bibliography candidates.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsbywhc/title2ris/pkg/types"
)

// DefaultBaseURL is the CrossRef works search endpoint.
const DefaultBaseURL = "https://api.crossref.org/works"

// Client performs title lookups against the CrossRef works API.
type Client struct {
	HTTP *http.Client

	// BaseURL is the works search endpoint. Tests substitute an httptest
	// server; empty means DefaultBaseURL.
	BaseURL string

	// UserAgent identifies the client to CrossRef's polite pool.
	UserAgent string

	// Rows is the number of ranked results requested per query (default 2).
	Rows int
}

// Search issues one lookup for title and returns the service's ranked
// candidates, most relevant first. A successful query with zero hits
// returns an empty slice and no error. Failures are returned as a
// *RequestError carrying the taxonomy kind; retrying is the caller's
// responsibility.
func (c *Client) Search(ctx context.Context, title string) ([]types.Candidate, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	rows := c.Rows
	if rows <= 0 {
		rows = 2
	}

	params := url.Values{
		"query": {title},
		"rows":  {fmt.Sprintf("%d", rows)},
	}
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &RequestError{Kind: TransientNetwork, Err: err}
	}
	defer resp.Body.Close()

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		return nil, &RequestError{
			Kind:   kind,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("CrossRef API returned HTTP %d", resp.StatusCode),
		}
	}

	var cr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, &RequestError{Kind: MalformedResponse, Err: fmt.Errorf("parsing CrossRef response: %w", err)}
	}

	candidates := make([]types.Candidate, 0, len(cr.Message.Items))
	for _, item := range cr.Message.Items {
		candidates = append(candidates, toCandidate(item))
	}
	return candidates, nil
}

// classifyStatus maps a non-2xx status to an error kind. 429 counts as
// retryable server pushback.
func classifyStatus(status int) (ErrorKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", false
	case status == http.StatusTooManyRequests || status >= 500:
		return ServerError, true
	case status >= 400:
		return ClientError, true
	default:
		return ServerError, true
	}
}

// toCandidate flattens a CrossRef work into a Candidate.
func toCandidate(item worksItem) types.Candidate {
	c := types.Candidate{
		Abstract:  item.Abstract,
		Volume:    item.Volume,
		Issue:     item.Issue,
		Pages:     item.Page,
		Publisher: item.Publisher,
	}

	if len(item.Title) > 0 {
		c.Title = item.Title[0]
	}
	if len(item.ContainerTitle) > 0 {
		c.Journal = item.ContainerTitle[0]
	}
	if len(item.ShortContainerTitle) > 0 {
		c.JournalAbbrev = item.ShortContainerTitle[0]
	}
	if len(item.ISSN) > 0 {
		c.ISSN = item.ISSN[0]
	}

	for _, a := range item.Author {
		if a.Family == "" && a.Given == "" {
			continue
		}
		c.Authors = append(c.Authors, types.Author{Family: a.Family, Given: a.Given})
	}

	// Year preference order: published-print, published-online, created.
	for _, d := range []worksDate{item.PublishedPrint, item.PublishedOnline, item.Created} {
		if y := d.year(); y > 0 {
			c.Year = y
			break
		}
	}

	c.DOI = strings.TrimPrefix(item.DOI, "https://doi.org/")
	return c
}

// CrossRef API JSON structures.
type worksResponse struct {
	Message worksMessage `json:"message"`
}

type worksMessage struct {
	TotalResults int         `json:"total-results"`
	Items        []worksItem `json:"items"`
}

type worksItem struct {
	Title               []string      `json:"title"`
	Author              []worksAuthor `json:"author"`
	ContainerTitle      []string      `json:"container-title"`
	ShortContainerTitle []string      `json:"short-container-title"`
	Abstract            string        `json:"abstract"`
	PublishedPrint      worksDate     `json:"published-print"`
	PublishedOnline     worksDate     `json:"published-online"`
	Created             worksDate     `json:"created"`
	Volume              string        `json:"volume"`
	Issue               string        `json:"issue"`
	Page                string        `json:"page"`
	DOI                 string        `json:"DOI"`
	ISSN                []string      `json:"ISSN"`
	Publisher           string        `json:"publisher"`
}

type worksAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type worksDate struct {
	DateParts [][]int `json:"date-parts"`
}

func (d worksDate) year() int {
	if len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
		return d.DateParts[0][0]
	}
	return 0
}
