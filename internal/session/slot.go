package session

import (
	"encoding/json"
	"fmt"

	"github.com/jdmorgan/comment-dash/internal/comment"
	"github.com/jdmorgan/comment-dash/internal/store"
)

const pendingKey = "pending_comment"

// Slot is a one-shot mailbox carrying a newly created comment from the
// create screen to the list screen. It holds at most one value; Take
// consumes it atomically so a record is never inserted twice.
type Slot struct {
	store *store.Store
}

// NewSlot creates a transfer slot over the given store.
func NewSlot(s *store.Store) *Slot {
	return &Slot{store: s}
}

// Put stores a comment in the slot, replacing any unconsumed value.
func (s *Slot) Put(c comment.Comment) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling pending comment: %w", err)
	}
	return s.store.Set(pendingKey, string(data))
}

// Take returns the pending comment and clears the slot, or nil when the
// slot is empty. A malformed stored value is cleared and reported rather
// than replayed.
func (s *Slot) Take() (*comment.Comment, error) {
	data, ok, err := s.store.Take(pendingKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var c comment.Comment
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("parsing pending comment: %w", err)
	}
	return &c, nil
}
