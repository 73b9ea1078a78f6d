package urlstate

import "net/url"

const maxEntries = 100

// History is an in-memory Location
type History struct {
	entries []*url.URL
	index   int
}

// NewHistory starts a history at initial
func NewHistory(initial *url.URL) *History {
	if initial == nil {
		initial = &url.URL{Scheme: Scheme, Path: "/"}
	}
	return &History{entries: []*url.URL{clone(initial)}}
}

func (h *History) Current() *url.URL {
	return clone(h.entries[h.index])
}

// Replace overwrites the current entry without adding one
func (h *History) Replace(u *url.URL) {
	h.entries[h.index] = clone(u)
}

// Push adds an entry after the current one, dropping any forward entries
func (h *History) Push(u *url.URL) {
	h.entries = append(h.entries[:h.index+1], clone(u))
	if len(h.entries) > maxEntries {
		h.entries = h.entries[len(h.entries)-maxEntries:]
	}
	h.index = len(h.entries) - 1
}

func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

func (h *History) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

func clone(u *url.URL) *url.URL {
	c := *u
	return &c
}
