package dashboard

import (
	"errors"

	"github.com/jdmorgan/comment-dash/internal/comment"
	"github.com/jdmorgan/comment-dash/internal/session"
)

// ErrLoginRequired is returned by Activate when no session is present;
// the caller should redirect to the login surface.
var ErrLoginRequired = errors.New("login required")

// CollectionClient is the remote surface the controllers depend on.
type CollectionClient interface {
	List() ([]comment.Comment, error)
	Delete(id int64) error
	Create(p comment.CreatePayload) error
}

// ListController owns the authoritative in-memory comment list, the
// filter query and the loading flag.
type ListController struct {
	session *session.Service
	slot    *session.Slot
	client  CollectionClient
	notify  NotifyFunc

	items   []comment.Comment
	query   string
	loading bool
}

// NewListController wires a list controller to its collaborators.
func NewListController(sess *session.Service, slot *session.Slot, client CollectionClient, notify NotifyFunc) *ListController {
	return &ListController{session: sess, slot: slot, client: client, notify: notify}
}

func (c *ListController) emit(level Level, msg string) {
	if c.notify != nil {
		c.notify(Notification{Level: level, Message: msg})
	}
}

// Activate gates on the session flag, drains the pending-transfer slot,
// then refreshes the list from the remote collection. A fetch failure is
// reported as a notification and keeps whatever items were already
// drained or present; it is not retried.
//
// A delete running concurrently with a slow refetch can be resurrected
// by the stale response; callers drive one operation at a time.
func (c *ListController) Activate() error {
	active, err := c.session.IsActive()
	if err != nil {
		return err
	}
	if !active {
		return ErrLoginRequired
	}

	pending, err := c.slot.Take()
	if err != nil {
		c.emit(LevelError, "Failed to read pending comment")
	}
	if pending != nil {
		c.items = append([]comment.Comment{*pending}, c.items...)
	}

	c.loading = true
	fetched, err := c.client.List()
	c.loading = false
	if err != nil {
		c.emit(LevelError, "Failed to fetch comments")
		return nil
	}

	if pending != nil {
		c.items = append([]comment.Comment{*pending}, fetched...)
	} else {
		c.items = fetched
	}
	return nil
}

// SetQuery updates the filter query. Items are untouched; only the
// visible projection changes.
func (c *ListController) SetQuery(q string) {
	c.query = q
}

// Query returns the current filter query.
func (c *ListController) Query() string {
	return c.query
}

// Items returns the full comment list in fetch order.
func (c *ListController) Items() []comment.Comment {
	return c.items
}

// Loading reports whether a fetch is in progress.
func (c *ListController) Loading() bool {
	return c.loading
}

// Visible returns the items matching the current query,
// case-insensitively against name, email and body. An empty query
// returns all items in order.
func (c *ListController) Visible() []comment.Comment {
	if c.query == "" {
		return c.items
	}
	visible := make([]comment.Comment, 0, len(c.items))
	for _, item := range c.items {
		if item.Matches(c.query) {
			visible = append(visible, item)
		}
	}
	return visible
}

// RequestDelete asks for confirmation, then deletes the comment remotely
// and removes it locally only once the remote call succeeds. Declining
// the confirmation does nothing; a failed delete leaves items unchanged.
func (c *ListController) RequestDelete(id int64, confirm func() bool) {
	if confirm == nil || !confirm() {
		return
	}

	if err := c.client.Delete(id); err != nil {
		c.emit(LevelError, "Failed to delete comment")
		return
	}

	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.emit(LevelInfo, "Comment deleted successfully")
}

// Logout clears the session flag. The caller redirects to login.
func (c *ListController) Logout() error {
	return c.session.Clear()
}
