package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "title2ris/1.0 (mailto:you@example.org)"). CrossRef routes
	// identified clients to its polite pool.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResolveConfig holds settings for the metadata resolution pipeline.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the CrossRef works search endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Rows is the number of ranked candidates requested per title
	// (default 2: the second hit covers supplementary-material first hits).
	Rows int `json:"rows" yaml:"rows"`

	// Workers is the number of concurrent resolution workers (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// MaxAttempts is the total attempt budget per title, including the
	// first try (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// Rate is the aggregate request ceiling in requests per second,
	// shared across all workers (default 1).
	Rate float64 `json:"rate" yaml:"rate"`

	// Burst is the token-bucket capacity (default 1).
	Burst int `json:"burst" yaml:"burst"`

	// RetryInitial and RetryMax bound the exponential backoff between
	// attempts (defaults 1s and 30s).
	RetryInitial time.Duration `json:"retry_initial" yaml:"retry_initial"`
	RetryMax     time.Duration `json:"retry_max" yaml:"retry_max"`

	// SkipTitles lists non-substantive-document patterns. A candidate whose
	// title contains any of these (case-insensitively) is skipped during
	// selection.
	SkipTitles []string `json:"skip_titles" yaml:"skip_titles"`
}

// OutputConfig holds settings for reading title lists and writing
// bibliography files.
type OutputConfig struct {
	// Encoding is the IANA name of the text encoding for input and output
	// files (default "utf-8").
	Encoding string `json:"encoding" yaml:"encoding"`
}

// DefaultSkipTitles is the stock special-title pattern set. Matched
// case-insensitively as substrings.
var DefaultSkipTitles = []string{
	"Frontispiece",
	"Frontispiz",
	"Supplemental Information",
	"Supplementary Information",
	"Supporting Information",
	"Cover Picture",
	"Cover Image",
	"Graphical Abstract",
	"Table of Contents",
}
