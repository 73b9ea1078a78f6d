package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the raw bytes of a catalog resource
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// IsRemote reports whether source is an http(s) URL
func IsRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// HTTPFetcher fetches catalogs over HTTP with a single attempt per call
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher with the given request timeout
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New().
		SetDebug(false).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(source)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	if res.IsError() {
		return nil, &FetchError{
			Source:     source,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode()),
		}
	}
	return res.Body(), nil
}

// FileFetcher reads catalogs from the local filesystem
type FileFetcher struct{}

func (FileFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	data, err := os.ReadFile(strings.TrimPrefix(source, "file://"))
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	return data, nil
}

// RoutingFetcher sends URLs to Remote and everything else to Local
type RoutingFetcher struct {
	Remote Fetcher
	Local  Fetcher
}

// NewRoutingFetcher builds the default fetcher for file paths and http(s) URLs
func NewRoutingFetcher(timeout time.Duration) *RoutingFetcher {
	return &RoutingFetcher{
		Remote: NewHTTPFetcher(timeout),
		Local:  FileFetcher{},
	}
}

func (f *RoutingFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if IsRemote(source) {
		return f.Remote.Fetch(ctx, source)
	}
	return f.Local.Fetch(ctx, source)
}
