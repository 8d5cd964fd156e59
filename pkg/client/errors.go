package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a 404 from the forms API.
var ErrNotFound = errors.New("client: not found")

// TransportError is any non-2xx response that is not the validation-overload
// case. Body keeps a short snippet for diagnostics.
type TransportError struct {
	Status int
	Path   string
	Body   string
}

func (e *TransportError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("client: %s returned status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("client: %s returned status %d: %s", e.Path, e.Status, e.Body)
}

const bodySnippetLimit = 200

func newTransportError(status int, path string, body []byte) *TransportError {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > bodySnippetLimit {
		snippet = snippet[:bodySnippetLimit] + "..."
	}
	return &TransportError{Status: status, Path: path, Body: snippet}
}
