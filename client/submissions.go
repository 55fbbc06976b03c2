package client

import "fmt"

// CIK is the numeric company identifier assigned by EDGAR.
type CIK uint32

// String returns the 10 digit zero padded form used by the submissions API.
func (self CIK) String() string { return fmt.Sprintf("%010d", uint32(self)) }

// CompanyFilings is a company's filing history as returned by the
// submissions API. Filings.Recent holds parallel arrays: item i of every
// array describes the same filing.
type CompanyFilings struct {
	CIK     string  `json:"cik"`
	Name    string  `json:"name"`
	Filings Filings `json:"filings"`
}

type Filings struct {
	Recent RecentFilings `json:"recent"`
}

type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

func (self *CompanyFilings) Recent() *RecentFilings {
	return &self.Filings.Recent
}

// Len returns the number of complete filing entries. The arrays come from an
// external source and aren't guaranteed to have equal length, so the shortest
// one wins.
func (self *RecentFilings) Len() int {
	n := len(self.AccessionNumber)
	for _, l := range []int{
		len(self.FilingDate), len(self.Form), len(self.PrimaryDocument),
	} {
		if l < n {
			n = l
		}
	}
	return n
}
