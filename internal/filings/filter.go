package filings

import (
	"errors"
	"fmt"
	"time"

	"github.com/tenkit/tenkit/client"
)

// NewFilter returns a filter keeping filings whose form type is one of forms
// and whose filing date falls inside the closed year range [startYear,
// endYear].
func NewFilter(forms []string, startYear, endYear int) (*Filter, error) {
	if len(forms) == 0 {
		return nil, errors.New("filings: no form types given")
	} else if startYear > endYear {
		return nil, fmt.Errorf("filings: start year %d after end year %d",
			startYear, endYear)
	}

	self := &Filter{
		forms:     make(map[string]struct{}, len(forms)),
		startYear: startYear,
		endYear:   endYear,
	}
	for _, form := range forms {
		self.forms[form] = struct{}{}
	}
	return self, nil
}

type Filter struct {
	forms     map[string]struct{}
	startYear int
	endYear   int
}

// Iterate calls fn for every matching entry of recent, preserving the
// original ordering. Entries with an unparsable filing date are dropped, not
// erred.
func (self *Filter) Iterate(recent *client.RecentFilings,
	fn func(*Entry) error,
) error {
	for i := range recent.Len() {
		entry, ok := self.entry(recent, i)
		if !ok {
			continue
		}
		if err := fn(entry); err != nil {
			return fmt.Errorf("failed iterate filings: %w", err)
		}
	}
	return nil
}

func (self *Filter) entry(recent *client.RecentFilings, i int) (*Entry, bool) {
	if _, ok := self.forms[recent.Form[i]]; !ok {
		return nil, false
	}

	filed, err := time.Parse(time.DateOnly, recent.FilingDate[i])
	if err != nil {
		return nil, false
	} else if year := filed.Year(); year < self.startYear || year > self.endYear {
		return nil, false
	}

	return &Entry{
		Form:            recent.Form[i],
		Filed:           filed,
		AccessionNumber: recent.AccessionNumber[i],
		PrimaryDocument: recent.PrimaryDocument[i],
	}, true
}

// Entries collects every matching entry into a slice.
func (self *Filter) Entries(recent *client.RecentFilings) []*Entry {
	entries := make([]*Entry, 0, recent.Len())
	_ = self.Iterate(recent, func(entry *Entry) error {
		entries = append(entries, entry)
		return nil
	})
	return entries
}
