package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors name elements removed from the document before content
// extraction. They carry no filing text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// contentSelectors name candidate containers of the main document content,
// in priority order.
var contentSelectors = []string{"main", "article", "[role=main]", "body"}

// extractContent reduces an HTML document to the fragment holding its main
// content.
func extractContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed parse html: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			content, err := goquery.OuterHtml(found.First())
			if err != nil {
				return "", fmt.Errorf("failed serialize content: %w", err)
			}
			return content, nil
		}
	}
	return "", errors.New("no content container found")
}
