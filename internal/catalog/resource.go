package catalog

import (
	"context"
	"sync/atomic"

	"showroom/internal/domain"
)

// Status is the load state of a Resource
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// tokens are unique across resources so a result can never be applied to a
// later mount of the same source
var tokens atomic.Uint64

// Resource tracks one catalog for the lifetime of a page mount.
// It is not safe for concurrent use; the UI loop owns it.
type Resource struct {
	Source string
	Kind   domain.Kind

	status     Status
	catalog    *domain.Catalog
	err        error
	refreshErr error
	refreshing bool

	token   uint64
	mounted bool

	ctx        context.Context
	cancel     context.CancelFunc
	loadCancel context.CancelFunc
}

// NewResource mounts a resource. Unmount releases it.
func NewResource(parent context.Context, source string, kind domain.Kind) *Resource {
	ctx, cancel := context.WithCancel(parent)
	return &Resource{
		Source:  source,
		Kind:    kind,
		mounted: true,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Begin starts a load and returns its context and token. Results must be
// handed back through Resolve with the same token. When data is already
// shown the resource stays Loaded and the load runs as a refresh.
func (r *Resource) Begin() (context.Context, uint64) {
	if r.loadCancel != nil {
		r.loadCancel()
	}
	r.token = tokens.Add(1)

	ctx, cancel := context.WithCancel(r.ctx)
	r.loadCancel = cancel

	if r.catalog != nil {
		r.refreshing = true
	} else {
		r.status = StatusLoading
		r.err = nil
	}
	return ctx, r.token
}

// ShowCached displays a cached catalog while a fresh load is pending
func (r *Resource) ShowCached(cat *domain.Catalog) {
	if !r.mounted || cat == nil {
		return
	}
	r.catalog = cat
	r.status = StatusLoaded
	r.err = nil
}

// Resolve applies a load result. It reports false and changes nothing when
// the token is stale or the resource was unmounted.
func (r *Resource) Resolve(token uint64, cat *domain.Catalog, err error) bool {
	if !r.mounted || token != r.token {
		return false
	}
	r.refreshing = false
	if r.loadCancel != nil {
		r.loadCancel()
		r.loadCancel = nil
	}

	if err != nil {
		if r.catalog != nil {
			// keep what is on screen, surface the error separately
			r.refreshErr = err
			return true
		}
		r.status = StatusFailed
		r.err = err
		return true
	}

	r.catalog = cat
	r.status = StatusLoaded
	r.err = nil
	r.refreshErr = nil
	return true
}

// Unmount cancels any in-flight load and ignores its result
func (r *Resource) Unmount() {
	if !r.mounted {
		return
	}
	r.mounted = false
	r.token++
	r.cancel()
}

func (r *Resource) Status() Status           { return r.status }
func (r *Resource) Catalog() *domain.Catalog { return r.catalog }
func (r *Resource) Err() error               { return r.err }
func (r *Resource) RefreshErr() error        { return r.refreshErr }
func (r *Resource) Refreshing() bool         { return r.refreshing }
func (r *Resource) Mounted() bool            { return r.mounted }
func (r *Resource) Token() uint64            { return r.token }
