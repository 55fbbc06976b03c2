package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/cobra"

	"github.com/tenkit/tenkit/internal/sitecheck"
)

var (
	checkTimeout time.Duration
	checkLimit   int

	checkCmd = cobra.Command{
		Use:   "check [url ...]",
		Short: "Probe registry endpoints and report status and last update",
		Long: `Probes the given endpoints, or the EDGAR endpoints the downloader
depends on when none are given, and reports status code, Last-Modified
header and latency of every one.`,
		Run: func(cmd *cobra.Command, args []string) {
			cobra.CheckErr(runCheck(cmd, args))
		},
	}
)

func init() {
	rootCmd.AddCommand(&checkCmd)
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second,
		"per endpoint timeout")
	checkCmd.Flags().IntVar(&checkLimit, "limit", 4,
		"number of concurrent probes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	urls := args
	if len(urls) == 0 {
		urls = sitecheck.DefaultEndpoints
	}

	checker := sitecheck.New(urls).
		WithTimeout(checkTimeout).
		WithLimit(checkLimit).
		WithUserAgent(checkUserAgent())

	results := checker.Run(cmd.Context())
	if failed := printResults(os.Stdout, results); failed > 0 {
		return fmt.Errorf("%v of %v endpoints failed", failed, len(results))
	}
	return nil
}

func printResults(w io.Writer, results []sitecheck.Result) (failed int) {
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.URL, r.Err)
			continue
		}

		status := "OK  "
		if !r.OK() {
			failed++
			status = "FAIL"
		}
		lastModified := "last-modified unknown"
		if !r.LastModified.IsZero() {
			lastModified = "last-modified " +
				r.LastModified.Format(time.RFC1123)
		}
		fmt.Fprintf(w, "%s %d %s: %s (%v)\n", status, r.StatusCode, r.URL,
			lastModified, r.Elapsed.Round(time.Millisecond))
	}
	return failed
}

// checkUserAgent returns TENKIT_UA if set. Unlike download, check works
// without it, data.sec.gov probes just report 403 then.
func checkUserAgent() string {
	cfg := struct {
		UA string `env:"TENKIT_UA"`
	}{}
	if err := env.Parse(&cfg); err != nil {
		return ""
	}
	return cfg.UA
}
