package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultOCRCommand renders a PDF as plain text with form feeds between
// pages.
const defaultOCRCommand = "pdftotext -layout {input} -"

const ocrTimeout = 60 * time.Second

// NewFallback returns a text extractor invoking an external tool for
// documents the pure-Go extractor cannot read, image-based scans most of
// all. The command template is split on whitespace and {input} is replaced
// with the PDF path. The tool must print the document text to stdout with
// \f between pages.
func NewFallback(command string) *Fallback {
	if command == "" {
		command = defaultOCRCommand
	}
	return &Fallback{command: command, timeout: ocrTimeout}
}

type Fallback struct {
	command string
	timeout time.Duration
}

func (self *Fallback) WithTimeout(d time.Duration) *Fallback {
	self.timeout = d
	return self
}

// Pages runs the external tool on the PDF at path and returns its output
// split into pages.
func (self *Fallback) Pages(ctx context.Context, path string,
) ([]string, error) {
	args := strings.Fields(self.command)
	if len(args) == 0 {
		return nil, errors.New("empty ocr command")
	}
	for i := range args {
		args[i] = strings.ReplaceAll(args[i], "{input}", path)
	}

	ctx, cancel := context.WithTimeout(ctx, self.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("failed run %q: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("failed run %q: %w", args[0], err)
	}

	pages := strings.Split(stdout.String(), "\f")
	// The tool emits a trailing form feed after the last page.
	if n := len(pages); n > 0 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages, nil
}
