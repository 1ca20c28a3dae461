package kb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileStore is a Store backed by a JSON file so non-devs can edit Q/A
// without code changes.
//
// Read semantics: until Watch is started every read loads the file fresh,
// so external edits always take effect. Once Watch runs, reads are served
// from a cache invalidated by fsnotify events on the backing file and by
// every write performed through the store.
type FileStore struct {
	path string

	mu     sync.RWMutex
	cache  []Entry
	cached bool

	watching bool
}

// NewFileStore returns a FileStore reading and writing the given path.
// A missing file behaves as an empty list.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List implements Store.
func (s *FileStore) List() ([]Entry, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	return append([]Entry(nil), entries...), nil
}

// Match implements Store. First entry in source order with any keyword hit
// wins, regardless of keyword specificity or length.
func (s *FileStore) Match(message string) (string, bool) {
	if strings.TrimSpace(message) == "" {
		return "", false
	}

	entries, err := s.entries()
	if err != nil {
		log.Printf("[kb] faq read failed: %v", err)
		return "", false
	}

	lower := strings.ToLower(message)
	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return entry.Answer, true
			}
		}
	}
	return "", false
}

// Replace implements Store. The whole list is rejected when any entry is
// malformed or when two entries share an id; id uniqueness holds on every
// write path, not just Add.
func (s *FileStore) Replace(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.Valid() {
			return ErrInvalidEntry
		}
		if _, dup := seen[entry.ID]; dup {
			return ErrDuplicateID
		}
		seen[entry.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(entries)
}

// Add implements Store.
func (s *FileStore) Add(entry Entry) error {
	if !entry.Valid() {
		return ErrInvalidEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked()
	if err != nil {
		return err
	}
	for _, existing := range entries {
		if existing.ID == entry.ID {
			return ErrDuplicateID
		}
	}
	return s.writeLocked(append(entries, entry))
}

// Delete implements Store.
func (s *FileStore) Delete(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked()
	if err != nil {
		return Entry{}, err
	}
	for i, existing := range entries {
		if existing.ID == id {
			removed := existing
			entries = append(entries[:i], entries[i+1:]...)
			if err := s.writeLocked(entries); err != nil {
				return Entry{}, err
			}
			return removed, nil
		}
	}
	return Entry{}, ErrNotFound
}

// Watch enables cached reads invalidated by filesystem events on the FAQ
// file. It is non-blocking; the watcher goroutine stops when ctx is done.
func (s *FileStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create faq watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save and
	// a file-level watch is lost after the first rename.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	s.mu.Lock()
	s.watching = true
	s.cached = false
	s.mu.Unlock()

	go func() {
		defer watcher.Close()
		target := filepath.Clean(s.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) == target {
					s.invalidate()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[kb] faq watcher error: %v", err)
			}
		}
	}()

	return nil
}

func (s *FileStore) invalidate() {
	s.mu.Lock()
	s.cached = false
	s.mu.Unlock()
}

func (s *FileStore) entries() ([]Entry, error) {
	s.mu.RLock()
	if s.watching && s.cached {
		entries := s.cache
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *FileStore) loadLocked() ([]Entry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.rememberLocked(nil)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	s.rememberLocked(entries)
	return entries, nil
}

func (s *FileStore) writeLocked(entries []Entry) error {
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode faq list: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.rememberLocked(entries)
	return nil
}

func (s *FileStore) rememberLocked(entries []Entry) {
	if s.watching {
		s.cache = entries
		s.cached = true
	}
}
