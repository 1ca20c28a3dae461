package kb

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFAQFile(t *testing.T, path string, entries []Entry) {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal entries: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write faq file: %v", err)
	}
}

func testEntries() []Entry {
	return []Entry{
		{ID: "pricing", Keywords: []string{"commission", "rate"}, Answer: "Reach out by email for a quote."},
		{ID: "stack", Keywords: []string{"rate", "stack"}, Answer: "React and Node, mostly."},
	}
}

func TestFileStoreMatchFirstEntryWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	// "rate" appears in both entries; source order decides.
	answer, ok := store.Match("What is your RATE?")
	if !ok {
		t.Fatal("expected a match")
	}
	if answer != "Reach out by email for a quote." {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestFileStoreMatchCaseInsensitiveSubstring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if _, ok := store.Match("do you take COMMISSIONS this month"); !ok {
		t.Fatal("expected substring match regardless of case")
	}
}

func TestFileStoreMatchBlankMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if _, ok := store.Match("   "); ok {
		t.Fatal("blank message must not match")
	}
}

func TestFileStoreMissingFileActsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(entries))
	}
	if _, ok := store.Match("anything"); ok {
		t.Fatal("missing file must not match")
	}
}

func TestFileStoreObservesExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if _, ok := store.Match("internship"); ok {
		t.Fatal("unexpected match before edit")
	}

	// Simulate a hot-edit of the file between requests. Without Watch the
	// store re-reads on every call, so the edit is visible immediately.
	writeFAQFile(t, path, append(testEntries(), Entry{
		ID: "ojt", Keywords: []string{"internship"}, Answer: "Open to internships.",
	}))

	answer, ok := store.Match("any internship slots?")
	if !ok {
		t.Fatal("expected match after external edit")
	}
	if answer != "Open to internships." {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestFileStoreAddDuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	err := store.Add(Entry{ID: "pricing", Keywords: []string{"x"}, Answer: "y"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestFileStoreAddPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if err := store.Add(Entry{ID: "hours", Keywords: []string{"timezone"}, Answer: "PHT, UTC+8."}); err != nil {
		t.Fatalf("Add err: %v", err)
	}

	// A fresh store over the same file must see the write.
	reread := NewFileStore(path)
	answer, ok := reread.Match("what timezone are you in")
	if !ok || answer != "PHT, UTC+8." {
		t.Fatalf("expected persisted entry to match, got %q ok=%v", answer, ok)
	}
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	removed, err := store.Delete("pricing")
	if err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if removed.ID != "pricing" {
		t.Fatalf("removed id = %s, want pricing", removed.ID)
	}

	// The second entry now wins on the shared keyword.
	answer, ok := store.Match("rate")
	if !ok || answer != "React and Node, mostly." {
		t.Fatalf("expected remaining entry to match, got %q ok=%v", answer, ok)
	}

	if _, err := store.Delete("pricing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreAddInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if err := store.Add(Entry{ID: "half-formed"}); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("err = %v, want ErrInvalidEntry", err)
	}
}

func TestFileStoreReplaceRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	err := store.Replace([]Entry{
		{ID: "twin", Keywords: []string{"a"}, Answer: "A"},
		{ID: "twin", Keywords: []string{"b"}, Answer: "B"},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}

	// The rejected list must not have touched the file.
	entries, listErr := store.List()
	if listErr != nil {
		t.Fatalf("List err: %v", listErr)
	}
	if len(entries) != 2 || entries[0].ID != "pricing" {
		t.Fatalf("file changed after rejected replace: %+v", entries)
	}
}

func TestFileStoreReplaceRejectsInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	err := store.Replace([]Entry{{ID: "no-answer", Keywords: []string{"x"}}})
	if !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("err = %v, want ErrInvalidEntry", err)
	}
}

func TestFileStoreReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb_faq.json")
	writeFAQFile(t, path, testEntries())
	store := NewFileStore(path)

	if err := store.Replace([]Entry{{ID: "only", Keywords: []string{"solo"}, Answer: "Just this one."}}); err != nil {
		t.Fatalf("Replace err: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "only" {
		t.Fatalf("unexpected entries after replace: %+v", entries)
	}
}
