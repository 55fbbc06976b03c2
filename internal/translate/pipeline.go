// Package translate rebuilds a PDF in another language: extract text page
// by page, translate every page through a model API and lay the result out
// as a new document. Translations are cached between runs.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Backend translates one page of text between two languages.
type Backend interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

func New(backend Backend, cache *Cache) *Pipeline {
	return &Pipeline{
		backend: backend,
		cache:   cache,
		target:  "en",
		logger:  slog.Default(),
		extract: ExtractPages,
	}
}

type Pipeline struct {
	backend  Backend
	cache    *Cache
	fallback *Fallback

	source string
	target string

	logger  *slog.Logger
	extract func(path string) ([]string, error)
}

// WithLanguages configures the language pair. An empty source lets the
// backend detect it.
func (self *Pipeline) WithLanguages(source, target string) *Pipeline {
	self.source = source
	self.target = target
	return self
}

func (self *Pipeline) WithFallback(fallback *Fallback) *Pipeline {
	self.fallback = fallback
	return self
}

func (self *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	self.logger = logger
	return self
}

// Stats counts what happened to the pages of one translated document.
type Stats struct {
	Pages      int
	Translated int
	CacheHits  int
	Failed     int
	OCRPages   int
}

// Run translates the PDF at inPath and writes the result to outPath. Pages
// are translated independently, sequentially and in page order; a failed
// page keeps its original text.
func (self *Pipeline) Run(ctx context.Context, inPath, outPath string,
) (*Stats, error) {
	if err := self.cache.Load(); err != nil {
		self.logger.Warn("failed load translation cache",
			slog.Any("error", err))
	}

	pages, err := self.extract(inPath)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Pages: len(pages)}
	self.fillEmptyPages(ctx, inPath, pages, stats)

	translated := make([]string, len(pages))
	for i, text := range pages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("translation interrupted: %w", err)
		} else if strings.TrimSpace(text) == "" {
			continue
		}
		translated[i] = self.translatePage(ctx, i+1, text, stats)
	}

	if err := WritePDF(outPath, translated); err != nil {
		return nil, err
	}

	if err := self.cache.Save(); err != nil {
		self.logger.Warn("failed save translation cache",
			slog.Any("error", err))
	}
	return stats, nil
}

// fillEmptyPages replaces empty pages with the fallback tool's output for
// the same page number. The tool runs once per document, on first need.
func (self *Pipeline) fillEmptyPages(ctx context.Context, path string,
	pages []string, stats *Stats,
) {
	if self.fallback == nil {
		return
	}

	var ocrPages []string
	ran := false
	for i, text := range pages {
		if strings.TrimSpace(text) != "" {
			continue
		}
		if !ran {
			ran = true
			var err error
			if ocrPages, err = self.fallback.Pages(ctx, path); err != nil {
				self.logger.Warn("text extraction fallback failed",
					slog.String("file", path), slog.Any("error", err))
				return
			}
		}
		if i < len(ocrPages) && strings.TrimSpace(ocrPages[i]) != "" {
			pages[i] = ocrPages[i]
			stats.OCRPages++
		}
	}
}

func (self *Pipeline) translatePage(ctx context.Context, pageNum int,
	text string, stats *Stats,
) string {
	if translation, ok := self.cache.Get(self.source, self.target, text); ok {
		stats.CacheHits++
		return translation
	}

	translation, err := self.backend.Translate(ctx, text, self.source,
		self.target)
	if err != nil {
		self.logger.Warn("failed translate page, keeping original text",
			slog.Int("page", pageNum), slog.Any("error", err))
		stats.Failed++
		return text
	}

	stats.Translated++
	self.cache.Put(self.source, self.target, text, translation)
	return translation
}
