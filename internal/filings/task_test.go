package filings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appleCIK = 320193

func testEntry() *Entry {
	return &Entry{
		Form:            "10-K",
		Filed:           time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
		AccessionNumber: "0000320193-19-000119",
		PrimaryDocument: "a10-k20199282019.htm",
	}
}

func TestBuilder_Task(t *testing.T) {
	b := NewBuilder(appleCIK, "Apple Inc.")
	task, err := b.Task(testEntry())
	require.NoError(t, err)

	assert.Equal(t, "Apple Inc.", task.Company)
	assert.Equal(t, "10-K", task.Form)
	assert.Equal(t, "000032019319000119", task.Accession)
	assert.Equal(t,
		"https://www.sec.gov/Archives/edgar/data/320193/000032019319000119/a10-k20199282019.htm",
		task.URL)
	assert.Equal(t, "Apple Inc./2019", task.Path)
	assert.Equal(t, "10-K_2019-03-01_000032019319000119.pdf", task.Filename)
}

func TestBuilder_Task_sanitizeCompany(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{company: "Acme/Corp: Inc.", want: "AcmeCorp Inc."},
		{company: `A\B/C*D?E:F"G<H>I|J`, want: "ABCDEFGHIJ"},
		{company: "  Trailing Co.  ", want: "Trailing Co."},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			b := NewBuilder(appleCIK, tt.company)
			task, err := b.Task(testEntry())
			require.NoError(t, err)
			assert.Equal(t, tt.want+"/2019", task.Path)
			assert.Equal(t, tt.want, task.Company)
		})
	}
}

func TestBuilder_Task_sanitizeForm(t *testing.T) {
	entry := testEntry()
	entry.Form = "10-K/A"

	b := NewBuilder(appleCIK, "Apple Inc.")
	task, err := b.Task(entry)
	require.NoError(t, err)

	assert.Equal(t, "10-K/A", task.Form)
	assert.Equal(t, "10-KA_2019-03-01_000032019319000119.pdf", task.Filename)
}

func TestBuilder_Task_idempotent(t *testing.T) {
	b := NewBuilder(appleCIK, "Apple Inc.")
	task1, err := b.Task(testEntry())
	require.NoError(t, err)
	task2, err := b.Task(testEntry())
	require.NoError(t, err)
	assert.Equal(t, task1, task2)
}

func TestBuilder_WithArchivesBaseURL(t *testing.T) {
	b := NewBuilder(appleCIK, "Apple Inc.")
	assert.Equal(t, archivesBaseURL, b.ArchivesBaseURL())

	const baseURL = "http://localhost:8080/Archives/edgar/data"
	assert.Same(t, b, b.WithArchivesBaseURL(baseURL))
	assert.Equal(t, baseURL, b.ArchivesBaseURL())

	task, err := b.Task(testEntry())
	require.NoError(t, err)
	assert.Equal(t,
		baseURL+"/320193/000032019319000119/a10-k20199282019.htm", task.URL)
}

func TestBuilder_Task_urlError(t *testing.T) {
	b := NewBuilder(appleCIK, "Apple Inc.").WithArchivesBaseURL(":localhost")
	_, err := b.Task(testEntry())
	require.Error(t, err)
}
