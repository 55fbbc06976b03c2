// Package bundle archives a finished download tree into a single zip file.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Create archives every regular file under root into a zip file at out,
// with forward slash paths relative to root. It returns the number of
// archived files. The archive itself is skipped when out lives under root.
func Create(root, out string) (int, error) {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return 0, fmt.Errorf("failed resolve %q: %w", out, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("failed create archive %q: %w", out, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	var count int

	err = filepath.WalkDir(root,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			} else if d.IsDir() {
				return nil
			}

			if absPath, err := filepath.Abs(path); err == nil &&
				absPath == absOut {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return fmt.Errorf("failed rel path %q: %w", path, err)
			}
			if err := addFile(w, path, filepath.ToSlash(rel)); err != nil {
				return err
			}
			count++
			return nil
		})
	if err != nil {
		return 0, fmt.Errorf("failed archive %q: %w", root, err)
	}

	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("failed finish archive %q: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed close archive %q: %w", out, err)
	}
	return count, nil
}

func addFile(w *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed open %q: %w", path, err)
	}
	defer src.Close()

	dst, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("failed add %q to archive: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed archive %q: %w", path, err)
	}
	return nil
}
