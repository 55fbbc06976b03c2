package filings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tenkit/tenkit/client"
)

const (
	archivesBaseURL = "https://www.sec.gov/Archives/edgar/data"

	// Characters not allowed in company folder and file names.
	unsafeChars = `\/*?:"<>|`
)

// NewBuilder returns a builder deriving download tasks for one company. The
// company display name becomes the folder name, with filesystem-unsafe
// characters removed.
func NewBuilder(cik client.CIK, company string) *Builder {
	return &Builder{
		cik:    cik,
		folder: sanitizeName(company),
	}
}

type Builder struct {
	cik    client.CIK
	folder string

	archivesBaseUrl string
}

func (self *Builder) WithArchivesBaseURL(url string) *Builder {
	self.archivesBaseUrl = url
	return self
}

func (self *Builder) ArchivesBaseURL() string {
	if self.archivesBaseUrl == "" {
		return archivesBaseURL
	}
	return self.archivesBaseUrl
}

// Task is a fully resolved, ready to render download instruction derived
// from one filing entry. Path and Filename name the destination under the
// output root.
type Task struct {
	Company   string
	CIK       client.CIK
	Form      string
	Filed     time.Time
	Accession string
	URL       string

	Path     string
	Filename string
}

// Task derives the download task for entry. The construction is
// deterministic: the same entry always yields the same URL and destination.
// Accession number separators are stripped for both the URL path segment and
// the file name.
func (self *Builder) Task(entry *Entry) (*Task, error) {
	accession := strings.ReplaceAll(entry.AccessionNumber, "-", "")
	cikPath := strconv.FormatUint(uint64(self.cik), 10)

	url, err := url.JoinPath(self.ArchivesBaseURL(), cikPath, accession,
		entry.PrimaryDocument)
	if err != nil {
		return nil, fmt.Errorf("join document url for %q: %w",
			entry.AccessionNumber, err)
	}

	filed := entry.Filed.Format(time.DateOnly)
	year := strconv.Itoa(entry.Filed.Year())
	fname := sanitizeName(entry.Form) + "_" + filed + "_" + accession + ".pdf"

	return &Task{
		Company:   self.folder,
		CIK:       self.cik,
		Form:      entry.Form,
		Filed:     entry.Filed,
		Accession: accession,
		URL:       url,
		Path:      self.folder + "/" + year,
		Filename:  fname,
	}, nil
}

// sanitizeName removes characters unsafe for file and folder names and trims
// surrounding whitespace.
func sanitizeName(s string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(clean)
}
