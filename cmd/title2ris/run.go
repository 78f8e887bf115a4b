// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jsbywhc/title2ris/internal/crossref"
	"github.com/jsbywhc/title2ris/internal/resolve"
	"github.com/jsbywhc/title2ris/internal/ris"
	"github.com/jsbywhc/title2ris/pkg/types"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "title2ris/1.0"
	defaultWorkers   = 4
	defaultRetries   = 3
	defaultRate      = 1.0
	defaultBurst     = 1
	defaultRows      = 2
)

func runResolve(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, out := loadConfig(cmd)

	titles, err := resolve.ReadTitles(inputPath, out.Encoding)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		return fmt.Errorf("no titles found in %s", inputPath)
	}
	fmt.Fprintf(os.Stdout, "Read %d title(s) from %s\n", len(titles), inputPath)

	client := &crossref.Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Rows:      cfg.Rows,
	}

	pool := &resolve.Pool{
		Workers: cfg.Workers,
		Resolver: &resolve.Resolver{
			Query:        client.Search,
			Filter:       resolve.NewFilter(cfg.SkipTitles),
			Limiter:      resolve.NewLimiter(cfg.Rate, cfg.Burst),
			MaxAttempts:  cfg.MaxAttempts,
			RetryInitial: cfg.RetryInitial,
			RetryMax:     cfg.RetryMax,
		},
		Progress: os.Stdout,
	}

	// Workers finish their in-flight attempt on interrupt, then stop; the
	// snapshot written below keeps everything resolved so far.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := pool.Run(ctx, titles)
	interrupted := ctx.Err() != nil

	var records []types.Candidate
	for _, e := range results.Snapshot() {
		if e.Outcome.Status == resolve.StatusResolved {
			records = append(records, *e.Outcome.Candidate)
		}
	}
	if err := ris.WriteFile(outputPath, records, out.Encoding); err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		settings := resolve.ReportSettings{
			Workers:     cfg.Workers,
			MaxAttempts: cfg.MaxAttempts,
			Rate:        cfg.Rate,
			Burst:       cfg.Burst,
		}
		if err := resolve.WriteReport(reportPath, titles, results, settings); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote run report to %s\n", reportPath)
	}

	s := results.Summary()
	fmt.Fprintf(os.Stdout, "\nSaved %d entr(ies) to %s: %d resolved, %d not found, %d failed (of %d)\n",
		len(records), outputPath, s.Resolved, s.NotFound, s.Failed, len(titles))

	if interrupted {
		return fmt.Errorf("interrupted: resolved %d of %d title(s)", s.Done(), len(titles))
	}
	if s.HasFailures() {
		return fmt.Errorf("%d title(s) failed resolution", s.Failed)
	}
	return nil
}

// loadConfig merges defaults, the viper config file, and flag overrides,
// in increasing precedence.
func loadConfig(cmd *cobra.Command) (types.ResolveConfig, types.OutputConfig) {
	cfg := types.ResolveConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:     crossref.DefaultBaseURL,
		Rows:        defaultRows,
		Workers:     defaultWorkers,
		MaxAttempts: defaultRetries,
		Rate:        defaultRate,
		Burst:       defaultBurst,
		SkipTitles:  types.DefaultSkipTitles,
	}
	out := types.OutputConfig{Encoding: "utf-8"}

	if viper.IsSet("timeout") {
		cfg.Timeout = viper.GetDuration("timeout")
	}
	if viper.IsSet("user_agent") {
		cfg.UserAgent = viper.GetString("user_agent")
	}
	if viper.IsSet("base_url") {
		cfg.BaseURL = viper.GetString("base_url")
	}
	if viper.IsSet("rows") {
		cfg.Rows = viper.GetInt("rows")
	}
	if viper.IsSet("workers") {
		cfg.Workers = viper.GetInt("workers")
	}
	if viper.IsSet("max_attempts") {
		cfg.MaxAttempts = viper.GetInt("max_attempts")
	}
	if viper.IsSet("rate") {
		cfg.Rate = viper.GetFloat64("rate")
	}
	if viper.IsSet("burst") {
		cfg.Burst = viper.GetInt("burst")
	}
	if viper.IsSet("retry_initial") {
		cfg.RetryInitial = viper.GetDuration("retry_initial")
	}
	if viper.IsSet("retry_max") {
		cfg.RetryMax = viper.GetDuration("retry_max")
	}
	if viper.IsSet("skip_titles") {
		cfg.SkipTitles = viper.GetStringSlice("skip_titles")
	}
	if viper.IsSet("encoding") {
		out.Encoding = viper.GetString("encoding")
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("retries") {
		cfg.MaxAttempts, _ = flags.GetInt("retries")
	}
	if flags.Changed("rate") {
		cfg.Rate, _ = flags.GetFloat64("rate")
	}
	if flags.Changed("burst") {
		cfg.Burst, _ = flags.GetInt("burst")
	}
	if flags.Changed("rows") {
		cfg.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("encoding") {
		out.Encoding, _ = flags.GetString("encoding")
	}

	return cfg, out
}
