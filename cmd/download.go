package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenkit/tenkit/client"
	"github.com/tenkit/tenkit/cmd/internal/common"
	"github.com/tenkit/tenkit/internal/batch"
	"github.com/tenkit/tenkit/internal/filings"
	"github.com/tenkit/tenkit/internal/render"
	"github.com/tenkit/tenkit/internal/report"
	"github.com/tenkit/tenkit/internal/roster"
)

var (
	rosterPath    string
	dataDir       string
	fromYear      int
	toYear        int
	downloadForms []string
	renderDelay   time.Duration
	retryNum      int
	retryDelay    time.Duration
	forceRender   bool
	manifestPath  string

	downloadCmd = cobra.Command{
		Use:   "download",
		Short: "Download annual report filings of every roster company",
		Long: `Reads a roster of companies from a CSV file, fetches the filing history
of every company from the EDGAR submissions API, keeps filings matching
the configured form types and year range and saves each one as PDF under

  <datadir>/<company>/<year>/<form>_<filed>_<accession>.pdf

Requires TENKIT_UA environment variable set to a User-Agent string the
SEC accepts, like "Sample Company AdminContact@sample.com".`,
		Example: `
  - Download 10-K filings, filed 2018-2020, of roster companies:

    $ tenkit download -r companies.csv -d ./filings --from 2018 --to 2020`,
		Run: func(cmd *cobra.Command, args []string) {
			cobra.CheckErr(runDownload(cmd.Context()))
		},
	}
)

func init() {
	rootCmd.AddCommand(&downloadCmd)
	flags := downloadCmd.Flags()
	flags.StringVarP(&rosterPath, "roster", "r", "companies.csv",
		"CSV file with \"cik\" and \"company\" columns")
	flags.StringVarP(&dataDir, "datadir", "d", "./",
		"store rendered filings into this directory")
	flags.IntVar(&fromYear, "from", 2018, "first filing year to keep")
	flags.IntVar(&toYear, "to", time.Now().Year(), "last filing year to keep")
	flags.StringSliceVarP(&downloadForms, "forms", "f",
		[]string{"10-K", "10-K/A"}, "form types to keep")
	flags.DurationVar(&renderDelay, "delay", time.Second,
		"pause after every rendered filing")
	flags.IntVar(&retryNum, "retries", 3,
		"attempts per submissions lookup")
	flags.DurationVar(&retryDelay, "retry-delay", 2*time.Second,
		"pause between lookup attempts")
	flags.BoolVar(&forceRender, "force", false,
		"render filings already saved on disk")
	flags.StringVar(&manifestPath, "manifest", "run.json",
		"write the run manifest here, empty skips it")
}

func runDownload(ctx context.Context) error {
	companies, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}

	filter, err := filings.NewFilter(downloadForms, fromYear, toYear)
	if err != nil {
		return err
	}

	edgar, err := common.NewClient()
	if err != nil {
		return err
	}
	edgar.WithRetry(client.RetryPolicy{Attempts: retryNum, Delay: retryDelay})

	run := report.NewRun(report.Params{
		StartYear: fromYear,
		EndYear:   toYear,
		Forms:     downloadForms,
	})
	b := batch.New(edgar, render.New(edgar), batch.NewDir(dataDir)).
		WithDelay(renderDelay).WithForce(forceRender)

	err = b.Run(ctx, companies, filter, run)
	run.Finish()
	saveManifest(manifestPath, run)
	if err != nil {
		return err
	}

	slog.Info("download completed",
		slog.Int("companies", len(run.Companies)),
		slog.Int("downloaded", run.Totals.Downloaded),
		slog.Int("skipped", run.Totals.Skipped),
		slog.Int("failed", run.Totals.Failed))
	return nil
}

func loadRoster(path string) ([]roster.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	r := roster.NewFile(f)
	if err := r.ReadHeaders(); err != nil {
		return nil, fmt.Errorf("roster %q: %w", path, err)
	}

	companies, err := r.Companies()
	if err != nil {
		return nil, fmt.Errorf("roster %q: %w", path, err)
	}
	return companies, nil
}

func saveManifest(path string, run *report.Run) {
	if path == "" {
		return
	}
	if err := run.Save(path); err != nil {
		slog.Warn("failed save run manifest", slog.Any("error", err))
	}
}
