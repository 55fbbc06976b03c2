package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Default header names of the roster spreadsheet columns.
const (
	identifierColumn = "cik"
	nameColumn       = "company"
)

// NewFile returns a reader of a company roster in CSV format. The file must
// carry a header row naming, at least, an identifier and a company name
// column.
func NewFile(r io.Reader) *File {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.ReuseRecord = true
	return &File{
		reader: csvReader,

		idName:   identifierColumn,
		nameName: nameColumn,

		idField:   -1,
		nameField: -1,
	}
}

type File struct {
	reader *csv.Reader

	idName   string
	nameName string

	idField   int
	nameField int
}

// WithColumns overrides the default column names. Header matching is
// case-insensitive.
func (self *File) WithColumns(identifier, name string) *File {
	self.idName = identifier
	self.nameName = name
	return self
}

// ReadHeaders reads the header row and locates the configured columns.
// Header cells are compared with surrounding whitespace removed.
func (self *File) ReadHeaders() error {
	record, err := self.reader.Read()
	if err != nil {
		return fmt.Errorf("reading roster header: %w", err)
	}

	for i := range record {
		switch name := strings.TrimSpace(record[i]); {
		case strings.EqualFold(name, self.idName):
			self.idField = i
		case strings.EqualFold(name, self.nameName):
			self.nameField = i
		}
	}

	switch {
	case self.idField < 0:
		return fmt.Errorf("roster column %q not found in header %q",
			self.idName, record)
	case self.nameField < 0:
		return fmt.Errorf("roster column %q not found in header %q",
			self.nameName, record)
	}
	return nil
}

// Iterate calls fn for every roster record, in file order. ReadHeaders must
// be called first. Iteration stops at the first malformed record or the
// first error returned from fn.
func (self *File) Iterate(fn func(*Company) error) error {
	if self.idField < 0 || self.nameField < 0 {
		return errors.New("roster headers not read")
	}

	for {
		record, err := self.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return fmt.Errorf("reading roster: %w", err)
		} else if err := self.callIterFunc(fn, record); err != nil {
			line, _ := self.reader.FieldPos(0)
			return fmt.Errorf("roster line %d: %w", line, err)
		}
	}
	return nil
}

func (self *File) callIterFunc(fn func(*Company) error, record []string) error {
	var company Company
	if err := company.parseCIK(record[self.idField]); err != nil {
		return err
	} else if err := company.parseName(record[self.nameField]); err != nil {
		return err
	}
	return fn(&company)
}

// Companies reads the whole roster into memory, keeping file order.
func (self *File) Companies() ([]Company, error) {
	var companies []Company
	err := self.Iterate(func(company *Company) error {
		companies = append(companies, *company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companies, nil
}
