package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/cobra"

	"github.com/tenkit/tenkit/internal/translate"
)

var (
	translateIn  string
	translateOut string
	sourceLang   string
	targetLang   string
	cachePath    string
	ocrCommand   string

	translateCmd = cobra.Command{
		Use:   "translate",
		Short: "Translate a PDF document into another language",
		Long: `Extracts the document text page by page, translates every page through
the Gemini API and lays the result out as a new PDF. Pages without a text
layer, scanned images most of all, are handed to an external extraction
tool, pdftotext by default.

Requires GEMINI_API_KEY environment variable set.`,
		Example: `
  - Translate a paper into Russian:

    $ tenkit translate -i paper.pdf --target ru`,
		Run: func(cmd *cobra.Command, args []string) {
			cobra.CheckErr(runTranslate(cmd.Context()))
		},
	}
)

func init() {
	rootCmd.AddCommand(&translateCmd)
	flags := translateCmd.Flags()
	flags.StringVarP(&translateIn, "in", "i", "", "PDF document to translate")
	flags.StringVarP(&translateOut, "out", "o", "",
		"write the translated PDF here (default <in>.<target>.pdf)")
	flags.StringVar(&sourceLang, "source", "",
		"source language, empty lets the model detect it")
	flags.StringVar(&targetLang, "target", "en", "target language")
	flags.StringVar(&cachePath, "cache", "translations.json",
		"translation cache file")
	flags.StringVar(&ocrCommand, "ocr-cmd", "",
		"text extraction fallback command, {input} is the PDF path")
}

func runTranslate(ctx context.Context) error {
	if translateIn == "" {
		return errors.New("no input document, use --in")
	}

	apiKey, err := geminiKey()
	if err != nil {
		return err
	}
	translator, err := translate.NewTranslator(ctx, apiKey)
	if err != nil {
		return err
	}

	outPath := translateOut
	if outPath == "" {
		outPath = translatedPath(translateIn, targetLang)
	}

	pipeline := translate.New(translator, translate.NewCache(cachePath)).
		WithLanguages(sourceLang, targetLang).
		WithFallback(translate.NewFallback(ocrCommand))

	stats, err := pipeline.Run(ctx, translateIn, outPath)
	if err != nil {
		return err
	}

	slog.Info("translation completed", slog.String("file", outPath),
		slog.Int("pages", stats.Pages),
		slog.Int("translated", stats.Translated),
		slog.Int("cached", stats.CacheHits),
		slog.Int("ocr", stats.OCRPages),
		slog.Int("failed", stats.Failed))
	return nil
}

func translatedPath(inPath, target string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + "." + target + ".pdf"
}

func geminiKey() (string, error) {
	cfg := struct {
		Key string `env:"GEMINI_API_KEY,notEmpty"`
	}{}
	if err := env.Parse(&cfg); err != nil {
		return "", fmt.Errorf("parse tenkit envs: %w", err)
	}
	return cfg.Key, nil
}
