package sendmodal

import (
	"net/url"
	"sync"
)

// SendParam is the query parameter that carries the selected option.
const SendParam = "send"

// Navigation binds the modal to the page URL. The URL is the single source of truth
// for whether the modal is open.
type Navigation interface {
	// Send returns the current send value, "" when absent.
	Send() string
	// SetSend requests navigation to the same page with send set; "" removes it.
	SetSend(value string)
	// Href returns the URL of the same page with send set to value, without navigating.
	Href(value string) string
}

// URLNavigation is a Navigation over a request path and its query string.
// Other query parameters are carried over untouched.
type URLNavigation struct {
	path  string
	query url.Values
}

// NewURLNavigation creates a navigation for path with the given query.
func NewURLNavigation(path string, query url.Values) *URLNavigation {
	q := make(url.Values, len(query))
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	return &URLNavigation{path: path, query: q}
}

func (n *URLNavigation) Send() string {
	return n.query.Get(SendParam)
}

func (n *URLNavigation) SetSend(value string) {
	if value == "" {
		n.query.Del(SendParam)
		return
	}
	n.query.Set(SendParam, value)
}

func (n *URLNavigation) Href(value string) string {
	q := make(url.Values, len(n.query))
	for k, v := range n.query {
		q[k] = v
	}
	if value == "" {
		q.Del(SendParam)
	} else {
		q.Set(SendParam, value)
	}
	return buildURL(n.path, q)
}

// URL returns the current location after any SetSend calls.
func (n *URLNavigation) URL() string {
	return buildURL(n.path, n.query)
}

// RawQuery is the encoded current query, send included.
func (n *URLNavigation) RawQuery() string {
	return n.query.Encode()
}

func buildURL(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// LabelMemory keeps the last shown title so a closing shell does not blank out.
type LabelMemory interface {
	PreviousLabel() string
	SetPreviousLabel(label string)
}

// MemoryLabels is an in-process LabelMemory.
type MemoryLabels struct {
	mu    sync.Mutex
	label string
}

func (m *MemoryLabels) PreviousLabel() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.label
}

func (m *MemoryLabels) SetPreviousLabel(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.label = label
}
