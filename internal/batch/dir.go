package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// NewDir returns a Storage saving filings under datadir. The datadir itself
// must exist beforehand, company and year folders are created on demand.
func NewDir(datadir string) *Dir {
	return &Dir{datadir: datadir}
}

type Dir struct {
	datadir string
}

// Exists reports whether a non-empty file is already saved at path/fname.
func (self *Dir) Exists(path, fname string) bool {
	fi, err := os.Stat(filepath.Join(self.datadir, path, fname))
	return err == nil && fi.Mode().IsRegular() && fi.Size() > 0
}

func (self *Dir) Save(path, fname string, r io.Reader) error {
	if err := self.makePath(path); err != nil {
		return err
	}

	path = filepath.Join(self.datadir, path, fname)
	w, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed create %q: %w", path, err)
	}
	defer w.Close()

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("failed write into %q: %w", path, err)
	}
	return nil
}

func (self *Dir) makePath(path string) error {
	dir, err := os.Stat(self.datadir)
	if err != nil {
		return fmt.Errorf("makePath %q: %w", self.datadir, err)
	} else if !dir.IsDir() {
		return fmt.Errorf("makePath: %q not a directory", self.datadir)
	}

	path = filepath.Join(self.datadir, path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", path, err)
	}
	return nil
}
