package filings

import "time"

// Entry is one row of a company's filing index that passed the filter. Filed
// holds the parsed filing date.
type Entry struct {
	Form            string
	Filed           time.Time
	AccessionNumber string
	PrimaryDocument string
}
