package internal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a story or comic generated during a session
type Entry struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Prompt     string    `json:"prompt"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	IsFavorite bool      `json:"isFavorite"`
}

// Export returns the text written when an entry is downloaded
func (e Entry) Export() string {
	return e.Prompt + "\n\n" + e.Content
}

// FileName returns the download name of the entry
func (e Entry) FileName() string {
	return fmt.Sprintf("what-if-%s-%s.txt", e.Kind, e.ID)
}

// Shelf holds the entries of one session, most recent first. It lives in memory only
// and is not safe for concurrent use.
type Shelf struct {
	entries []Entry
	now     func() time.Time
}

// NewShelf creates an empty shelf
func NewShelf() *Shelf {
	return &Shelf{now: time.Now}
}

// Add prepends a new entry and returns it
func (s *Shelf) Add(kind Kind, prompt, content string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Prompt:    prompt,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.entries = append([]Entry{entry}, s.entries...)
	return entry
}

// List returns the entries of kind, most recent first. An empty kind lists everything.
func (s *Shelf) List(kind Kind) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if kind == "" || e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Favorites returns the favorite entries of kind, most recent first
func (s *Shelf) Favorites(kind Kind) []Entry {
	var out []Entry
	for _, e := range s.List(kind) {
		if e.IsFavorite {
			out = append(out, e)
		}
	}
	return out
}

// Get looks an entry up by id
func (s *Shelf) Get(id string) (Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// ToggleFavorite flips the favorite flag of an entry and returns the updated entry
func (s *Shelf) ToggleFavorite(id string) (Entry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].IsFavorite = !s.entries[i].IsFavorite
			return s.entries[i], nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Len returns the number of entries
func (s *Shelf) Len() int {
	return len(s.entries)
}
