// Package kb holds the editable FAQ knowledge base consumed by the chat
// pipeline's first resolution tier.
package kb

import "errors"

var (
	ErrDuplicateID  = errors.New("faq entry with this id already exists")
	ErrInvalidEntry = errors.New("faq entry is missing id, keywords or answer")
	ErrNotFound     = errors.New("faq entry not found")
)

// Entry is one keyword→answer FAQ record. IDs are unique; uniqueness is
// enforced on the write path, never checked on read.
type Entry struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}

// Valid reports whether the entry has the required shape for a write.
func (e Entry) Valid() bool {
	return e.ID != "" && len(e.Keywords) > 0 && e.Answer != ""
}

// Store is the FAQ source. The matcher only reads it; the admin surface
// writes it. Writes must be observed by subsequent reads without a process
// restart.
type Store interface {
	// List returns every entry in source order.
	List() ([]Entry, error)

	// Match returns the answer of the first entry (source order) with any
	// keyword that is a case-insensitive substring of the message, or
	// false when nothing matches or the message is blank.
	Match(message string) (string, bool)

	// Replace swaps the entire entry list. Every entry must be valid and
	// ids unique within the list; ErrInvalidEntry / ErrDuplicateID otherwise.
	Replace(entries []Entry) error

	// Add appends a new valid entry; ErrDuplicateID when the id is taken.
	Add(entry Entry) error

	// Delete removes the entry by id, returning it; ErrNotFound when absent.
	Delete(id string) (Entry, error)
}
