// Package comment provides the comment domain model and payload validation.
package comment

import "strings"

// Comment is a single entry in the remote comments collection.
type Comment struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"postId,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// CreatePayload is the request body for creating a comment.
type CreatePayload struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
	PostID int64  `json:"postId,omitempty"`
}

const requiredMsg = "Field is required"

// Validate checks a create payload and returns a map of field name to
// error message. An empty map means the payload is valid.
func Validate(p CreatePayload) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = requiredMsg
	}

	email := strings.TrimSpace(p.Email)
	if email == "" {
		errs["email"] = requiredMsg
	} else if !validEmail(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(p.Body) == "" {
		errs["body"] = requiredMsg
	}

	return errs
}

// validEmail checks for a local@domain.tld shape: a non-empty local part,
// a dot somewhere inside the domain, and no whitespace anywhere.
func validEmail(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Matches reports whether the comment contains the query, case-insensitively,
// in its name, email or body. An empty query matches everything.
func (c Comment) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Body), q)
}
