// Package report records the outcome of one download run: which companies
// were processed, what was downloaded, skipped or failed. The manifest is
// written as JSON next to the downloaded filings.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Params are the filter settings the run was started with.
type Params struct {
	StartYear int      `json:"start_year"`
	EndYear   int      `json:"end_year"`
	Forms     []string `json:"forms"`
}

// Counters sum per filing outcomes.
type Counters struct {
	Downloaded int `json:"downloaded"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

func (self *Counters) Total() int {
	return self.Downloaded + self.Skipped + self.Failed
}

func (self *Counters) add(other *Counters) {
	self.Downloaded += other.Downloaded
	self.Skipped += other.Skipped
	self.Failed += other.Failed
}

// CompanyResult is the outcome for one roster company. LookupOK is false
// when the filing index of the company could not be fetched at all.
type CompanyResult struct {
	CIK      uint32 `json:"cik"`
	Name     string `json:"name"`
	LookupOK bool   `json:"lookup_ok"`
	Counters
}

// NewRun starts a manifest for one download run.
func NewRun(params Params) *Run {
	return &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Params:    params,
	}
}

type Run struct {
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Params     Params           `json:"params"`
	Companies  []*CompanyResult `json:"companies"`
	Totals     Counters         `json:"totals"`
}

// AddCompany appends a company to the manifest and returns its result
// record for the caller to fill.
func (self *Run) AddCompany(cik uint32, name string) *CompanyResult {
	result := &CompanyResult{CIK: cik, Name: name}
	self.Companies = append(self.Companies, result)
	return result
}

// Finish stamps the end time and aggregates per company counters.
func (self *Run) Finish() {
	self.FinishedAt = time.Now()
	self.Totals = Counters{}
	for _, company := range self.Companies {
		self.Totals.add(&company.Counters)
	}
}

func (self *Run) HasFailures() bool {
	for _, company := range self.Companies {
		if !company.LookupOK || company.Failed > 0 {
			return true
		}
	}
	return false
}

// Save writes the manifest as indented JSON.
func (self *Run) Save(path string) error {
	b, err := json.MarshalIndent(self, "", "  ")
	if err != nil {
		return fmt.Errorf("failed marshal run manifest: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed write run manifest %q: %w", path, err)
	}
	return nil
}
