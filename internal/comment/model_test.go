package comment

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		payload    CreatePayload
		wantFields []string
	}{
		{
			name:    "valid",
			payload: CreatePayload{Name: "A", Email: "a@b.com", Body: "hi"},
		},
		{
			name:       "missing name",
			payload:    CreatePayload{Name: "", Email: "a@b.com", Body: "hi"},
			wantFields: []string{"name"},
		},
		{
			name:       "whitespace name",
			payload:    CreatePayload{Name: "   ", Email: "a@b.com", Body: "hi"},
			wantFields: []string{"name"},
		},
		{
			name:       "bad email",
			payload:    CreatePayload{Name: "A", Email: "not-an-email", Body: "hi"},
			wantFields: []string{"email"},
		},
		{
			name:       "missing body",
			payload:    CreatePayload{Name: "A", Email: "a@b.com", Body: ""},
			wantFields: []string{"body"},
		},
		{
			name:       "everything missing",
			payload:    CreatePayload{},
			wantFields: []string{"name", "email", "body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.payload)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, f := range tt.wantFields {
				if errs[f] == "" {
					t.Errorf("expected error for field %q, got none", f)
				}
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"no-at-sign", false},
		{"@missing-local.com", false},
		{"trailing@", false},
		{"no-dot@domain", false},
		{"dot-before@.com", false},
		{"dot-at-end@domain.", false},
		{"two@@signs.com", false},
		{"has space@b.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := validEmail(tt.email); got != tt.want {
				t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	c := Comment{ID: 1, Name: "Alice Smith", Email: "alice@example.com", Body: "Great Post"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query", "", true},
		{"name match", "alice", true},
		{"name match mixed case", "ALICE", true},
		{"email match", "example.com", true},
		{"body match", "great", true},
		{"no match", "zzz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Matches(tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
