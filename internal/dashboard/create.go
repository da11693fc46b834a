package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmorgan/comment-dash/internal/comment"
	"github.com/jdmorgan/comment-dash/internal/session"
)

// DefaultNavigateDelay is how long a successful submission stays on
// screen before navigating back to the list.
const DefaultNavigateDelay = 1200 * time.Millisecond

// CreateController owns the comment form draft, its field errors and the
// submission flag.
type CreateController struct {
	client   CollectionClient
	slot     *session.Slot
	notify   NotifyFunc
	navigate func()

	// NavigateDelay is the pause before the navigate callback fires
	// after a successful submit.
	NavigateDelay time.Duration

	draft       comment.CreatePayload
	fieldErrors map[string]string
	submitting  bool
	created     *comment.Comment
}

// NewCreateController wires a create controller. navigate may be nil for
// callers that handle their own navigation.
func NewCreateController(client CollectionClient, slot *session.Slot, notify NotifyFunc, navigate func()) *CreateController {
	return &CreateController{
		client:        client,
		slot:          slot,
		notify:        notify,
		navigate:      navigate,
		NavigateDelay: DefaultNavigateDelay,
		fieldErrors:   map[string]string{},
	}
}

func (c *CreateController) emit(level Level, msg string) {
	if c.notify != nil {
		c.notify(Notification{Level: level, Message: msg})
	}
}

// SetField updates a draft field by name and clears any existing error
// on that field. Unknown field names are ignored.
func (c *CreateController) SetField(field, value string) {
	switch field {
	case "name":
		c.draft.Name = value
	case "email":
		c.draft.Email = value
	case "body":
		c.draft.Body = value
	default:
		return
	}
	delete(c.fieldErrors, field)
}

// SetPostID attaches the draft to a post.
func (c *CreateController) SetPostID(id int64) {
	c.draft.PostID = id
}

// Draft returns the current form state.
func (c *CreateController) Draft() comment.CreatePayload {
	return c.draft
}

// FieldErrors returns the per-field validation messages from the last
// Validate call.
func (c *CreateController) FieldErrors() map[string]string {
	return c.fieldErrors
}

// Submitting reports whether a submission is in progress.
func (c *CreateController) Submitting() bool {
	return c.submitting
}

// Created returns the display record synthesized by the last successful
// submission, or nil. Its ID is a client-generated placeholder, not the
// server-assigned key.
func (c *CreateController) Created() *comment.Comment {
	return c.created
}

// Validate checks the draft and records field errors. Pure apart from
// updating the error map.
func (c *CreateController) Validate() bool {
	c.fieldErrors = comment.Validate(c.draft)
	return len(c.fieldErrors) == 0
}

// Submit validates and sends the draft. Invalid drafts never reach the
// network. On success the synthesized display record goes into the
// transfer slot and the navigate callback is scheduled; on failure the
// draft is kept for retry. Returns whether the comment was created.
func (c *CreateController) Submit() bool {
	if !c.Validate() {
		return false
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	if err := c.client.Create(c.draft); err != nil {
		c.emit(LevelError, "Failed to create comment")
		return false
	}

	created := comment.Comment{
		ID:     int64(uuid.New().ID()),
		PostID: c.draft.PostID,
		Name:   c.draft.Name,
		Email:  c.draft.Email,
		Body:   c.draft.Body,
	}
	c.created = &created

	if err := c.slot.Put(created); err != nil {
		c.emit(LevelError, "Failed to hand off new comment")
	}

	c.emit(LevelInfo, "Comment created successfully!")

	if c.navigate != nil {
		time.AfterFunc(c.NavigateDelay, c.navigate)
	}
	return true
}
