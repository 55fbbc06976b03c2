package translate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallback(t *testing.T) {
	fallback := NewFallback("")
	assert.Equal(t, defaultOCRCommand, fallback.command)
	assert.Equal(t, ocrTimeout, fallback.timeout)

	fallback = NewFallback("tesseract {input} stdout")
	assert.Equal(t, "tesseract {input} stdout", fallback.command)

	assert.Same(t, fallback, fallback.WithTimeout(time.Second))
	assert.Equal(t, time.Second, fallback.timeout)
}

func TestFallback_Pages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t,
		os.WriteFile(path, []byte("page one\fpage two\f"), 0o644))

	fallback := NewFallback("cat {input}")
	pages, err := fallback.Pages(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"page one", "page two"}, pages)
}

func TestFallback_Pages_singlePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("only page"), 0o644))

	fallback := NewFallback("cat {input}")
	pages, err := fallback.Pages(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only page"}, pages)
}

func TestFallback_Pages_commandFailed(t *testing.T) {
	fallback := NewFallback("false")
	_, err := fallback.Pages(context.Background(), "doc.pdf")
	require.Error(t, err)
}

func TestFallback_Pages_commandNotFound(t *testing.T) {
	fallback := NewFallback("tenkit-no-such-tool {input}")
	_, err := fallback.Pages(context.Background(), "doc.pdf")
	require.Error(t, err)
}

func TestFallback_Pages_timeout(t *testing.T) {
	fallback := NewFallback("sleep 5").WithTimeout(10 * time.Millisecond)
	_, err := fallback.Pages(context.Background(), "doc.pdf")
	require.Error(t, err)
}
