package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jdmorgan/comment-dash/internal/api"
	"github.com/jdmorgan/comment-dash/internal/comment"
)

func createServer(t *testing.T, createCalls *atomic.Int64, failCreates bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			createCalls.Add(1)
			if failCreates {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
		case "GET":
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(fixtures); err != nil {
				t.Fatalf("encode: %v", err)
			}
		}
	}))
}

func fillValidDraft(ctrl *CreateController) {
	ctrl.SetField("name", "A")
	ctrl.SetField("email", "a@b.com")
	ctrl.SetField("body", "hi")
}

func TestValidateControllerState(t *testing.T) {
	tests := []struct {
		name      string
		draft     comment.CreatePayload
		wantOK    bool
		wantField string
	}{
		{"missing name", comment.CreatePayload{Name: "", Email: "a@b.com", Body: "hi"}, false, "name"},
		{"bad email", comment.CreatePayload{Name: "A", Email: "not-an-email", Body: "hi"}, false, "email"},
		{"valid", comment.CreatePayload{Name: "A", Email: "a@b.com", Body: "hi"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctrl := NewCreateController(api.New("http://unused"), env.slot, nil, nil)
			ctrl.SetField("name", tt.draft.Name)
			ctrl.SetField("email", tt.draft.Email)
			ctrl.SetField("body", tt.draft.Body)

			ok := ctrl.Validate()
			if ok != tt.wantOK {
				t.Fatalf("Validate() = %v, want %v (errors %v)", ok, tt.wantOK, ctrl.FieldErrors())
			}
			if tt.wantOK {
				if len(ctrl.FieldErrors()) != 0 {
					t.Errorf("field errors = %v, want none", ctrl.FieldErrors())
				}
				return
			}
			if len(ctrl.FieldErrors()) != 1 {
				t.Fatalf("field errors = %v, want exactly one", ctrl.FieldErrors())
			}
			if ctrl.FieldErrors()[tt.wantField] == "" {
				t.Errorf("expected error on %q, got %v", tt.wantField, ctrl.FieldErrors())
			}
		})
	}
}

func TestSetFieldClearsError(t *testing.T) {
	env := newTestEnv(t)
	ctrl := NewCreateController(api.New("http://unused"), env.slot, nil, nil)

	ctrl.SetField("email", "a@b.com")
	ctrl.SetField("body", "hi")
	if ctrl.Validate() {
		t.Fatal("expected name error")
	}
	if ctrl.FieldErrors()["name"] == "" {
		t.Fatal("expected name error to be set")
	}

	ctrl.SetField("name", "A")
	if ctrl.FieldErrors()["name"] != "" {
		t.Error("name error should clear on edit")
	}
}

func TestSubmitInvalidSkipsNetwork(t *testing.T) {
	env := newTestEnv(t)
	var createCalls atomic.Int64
	srv := createServer(t, &createCalls, false)
	defer srv.Close()

	ctrl := NewCreateController(api.New(srv.URL), env.slot, nil, nil)
	if ctrl.Submit() {
		t.Fatal("empty draft should not submit")
	}
	if createCalls.Load() != 0 {
		t.Errorf("create calls = %d, want 0", createCalls.Load())
	}
}

func TestSubmitSuccessFillsSlotOnce(t *testing.T) {
	env := newTestEnv(t)
	var createCalls atomic.Int64
	srv := createServer(t, &createCalls, false)
	defer srv.Close()

	var notes []Notification
	ctrl := NewCreateController(api.New(srv.URL), env.slot, func(n Notification) {
		notes = append(notes, n)
	}, nil)
	fillValidDraft(ctrl)

	if !ctrl.Submit() {
		t.Fatalf("submit failed, errors %v", ctrl.FieldErrors())
	}
	if createCalls.Load() != 1 {
		t.Errorf("create calls = %d, want 1", createCalls.Load())
	}
	if ctrl.Submitting() {
		t.Error("submitting should reset after Submit")
	}
	if len(notes) != 1 || notes[0].Level != LevelInfo {
		t.Errorf("notifications = %v, want one success", notes)
	}

	created := ctrl.Created()
	if created == nil {
		t.Fatal("expected synthesized display record")
	}
	if created.Name != "A" || created.Email != "a@b.com" || created.Body != "hi" {
		t.Errorf("created = %+v", created)
	}

	// The record lands in the slot and is drained exactly once by the
	// next list activation, even though the list fetch also succeeds.
	if err := env.sess.Activate(); err != nil {
		t.Fatalf("activate session: %v", err)
	}
	list := NewListController(env.sess, env.slot, api.New(srv.URL), nil)
	if err := list.Activate(); err != nil {
		t.Fatalf("activate: %v", err)
	}

	items := list.Items()
	if len(items) != len(fixtures)+1 {
		t.Fatalf("got %d items, want %d", len(items), len(fixtures)+1)
	}
	if items[0].ID != created.ID {
		t.Errorf("head ID = %d, want %d", items[0].ID, created.ID)
	}
	count := 0
	for _, item := range items {
		if item.ID == created.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("created comment appears %d times, want 1", count)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	env := newTestEnv(t)
	var createCalls atomic.Int64
	srv := createServer(t, &createCalls, true)
	defer srv.Close()

	var notes []Notification
	ctrl := NewCreateController(api.New(srv.URL), env.slot, func(n Notification) {
		notes = append(notes, n)
	}, nil)
	fillValidDraft(ctrl)

	if ctrl.Submit() {
		t.Fatal("submit should report failure")
	}
	if ctrl.Submitting() {
		t.Error("submitting should reset after failure")
	}
	if ctrl.Draft().Name != "A" {
		t.Error("draft should survive a failed submit")
	}
	if len(notes) != 1 || notes[0].Level != LevelError {
		t.Errorf("notifications = %v, want one error", notes)
	}

	// Nothing was handed off.
	pending, err := env.slot.Take()
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if pending != nil {
		t.Errorf("slot = %+v, want empty", pending)
	}
}

func TestSubmitSchedulesNavigate(t *testing.T) {
	env := newTestEnv(t)
	var createCalls atomic.Int64
	srv := createServer(t, &createCalls, false)
	defer srv.Close()

	navigated := make(chan struct{})
	ctrl := NewCreateController(api.New(srv.URL), env.slot, nil, func() {
		close(navigated)
	})
	ctrl.NavigateDelay = 10 * time.Millisecond
	fillValidDraft(ctrl)

	if !ctrl.Submit() {
		t.Fatalf("submit failed, errors %v", ctrl.FieldErrors())
	}

	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("navigate callback never fired")
	}
}
