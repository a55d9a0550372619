// Package models defines the file-manager entities exchanged with the backend
// and the client-side view state.
package models

import "net/http"

// FileEntry is one row of a listing as returned by the backend.
// Name is unique within a listing and is the only client-side identity.
type FileEntry struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	DateModified string `json:"date_modified,omitempty"`
}

// ListResult is the decoded body of a listing call. The backend answers either
// with a JSON array of entries or with an object carrying an error message.
type ListResult struct {
	Entries []FileEntry
	IsList  bool
	Error   string
}

// ServerReply is the {message} / {error} body returned by mutating endpoints.
type ServerReply struct {
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`
}

// OK reports whether the reply came with a 2xx status.
func (r ServerReply) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Text returns the message, falling back to the error text.
func (r ServerReply) Text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
