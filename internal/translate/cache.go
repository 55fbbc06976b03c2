package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// NewCache returns a translation cache persisted as a JSON file at path.
// Entries are keyed by a hash of the language pair and the source text, so
// repeated runs over the same document skip already paid API calls.
func NewCache(path string) *Cache {
	return &Cache{path: path, entries: make(map[string]string)}
}

type Cache struct {
	path string

	mu      sync.Mutex
	entries map[string]string
}

// Load reads the cache file. A missing file is not an error, the cache
// starts empty.
func (self *Cache) Load() error {
	b, err := os.ReadFile(self.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed read cache %q: %w", self.path, err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("failed parse cache %q: %w", self.path, err)
	}

	self.mu.Lock()
	self.entries = entries
	self.mu.Unlock()
	return nil
}

func (self *Cache) Save() error {
	self.mu.Lock()
	b, err := json.MarshalIndent(self.entries, "", "  ")
	self.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed marshal cache: %w", err)
	}

	if err := os.WriteFile(self.path, b, 0o644); err != nil {
		return fmt.Errorf("failed write cache %q: %w", self.path, err)
	}
	return nil
}

func (self *Cache) Get(source, target, text string) (string, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	translation, ok := self.entries[cacheKey(source, target, text)]
	return translation, ok
}

func (self *Cache) Put(source, target, text, translation string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.entries[cacheKey(source, target, text)] = translation
}

func (self *Cache) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.entries)
}

func cacheKey(source, target, text string) string {
	h := xxhash.Sum64String(source + "\x00" + target + "\x00" + text)
	return fmt.Sprintf("%016x", h)
}
