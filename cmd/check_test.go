package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenkit/tenkit/internal/sitecheck"
)

func TestPrintResults(t *testing.T) {
	results := []sitecheck.Result{
		{
			URL:          "https://www.sec.gov/",
			StatusCode:   200,
			LastModified: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
			Elapsed:      187 * time.Millisecond,
		},
		{
			URL:        "https://data.sec.gov/submissions/CIK0000320193.json",
			StatusCode: 403,
			Elapsed:    20 * time.Millisecond,
		},
		{
			URL: "https://localhost:1/",
			Err: errors.New("connection refused"),
		},
	}

	var sb strings.Builder
	assert.Equal(t, 2, printResults(&sb, results))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "OK   200 https://www.sec.gov/")
	assert.Contains(t, lines[0], "Fri, 01 Nov 2024 12:00:00 UTC")
	assert.Contains(t, lines[0], "187ms")
	assert.Contains(t, lines[1], "FAIL 403")
	assert.Contains(t, lines[1], "last-modified unknown")
	assert.Contains(t, lines[2],
		"FAIL https://localhost:1/: connection refused")
}

func TestPrintResults_allOK(t *testing.T) {
	var sb strings.Builder
	failed := printResults(&sb, []sitecheck.Result{
		{URL: "https://www.sec.gov/", StatusCode: 200},
	})
	assert.Zero(t, failed)
	assert.Contains(t, sb.String(), "OK   200")
}
