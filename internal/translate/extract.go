package translate

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ExtractPages returns the text of every page of the PDF at path, in page
// order. A page whose text cannot be read contributes an empty string, the
// extraction itself never aborts on a single bad page.
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed open pdf %q: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		pages = append(pages, pageText(r.Page(i)))
	}
	return pages, nil
}

func pageText(p pdf.Page) (text string) {
	// The underlying reader panics on malformed content streams.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}

	text, err := p.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return text
}
