// Package render turns a filing document URL into a PDF byte stream. HTML
// documents are reduced to their main content, normalized to markdown and
// laid out page by page. Documents of any other content type are passed
// through as fetched.
package render

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/tenkit/tenkit/client"
)

const htmlMediaType = "text/html"

func New(client *client.Client) *Renderer {
	return &Renderer{client: client}
}

type Renderer struct {
	client *client.Client
}

// Render fetches url and returns the document as PDF bytes.
func (self *Renderer) Render(ctx context.Context, url string) ([]byte, error) {
	resp, err := self.client.GetOK(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed read %q: %w", url, err)
	}

	if !htmlContent(resp.Header.Get("Content-Type")) {
		return b, nil
	}

	pdfBytes, err := self.renderHTML(string(b))
	if err != nil {
		return nil, fmt.Errorf("failed render %q: %w", url, err)
	}
	return pdfBytes, nil
}

func htmlContent(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, htmlMediaType)
	}
	return mediaType == htmlMediaType
}

func (self *Renderer) renderHTML(html string) ([]byte, error) {
	content, err := extractContent(html)
	if err != nil {
		return nil, err
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return nil, fmt.Errorf("failed convert content to markdown: %w", err)
	}
	return renderPDF(markdown)
}
