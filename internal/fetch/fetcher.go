// Package fetch implements the document fetcher over a local content tree.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/docnav/docnav/internal/errors"
)

// FileFetcher resolves logical routes to files under a content root and
// reads them with a per-fetch timeout. Fetched documents are kept in an LRU
// cache keyed by route; the content tree is static for the lifetime of the
// process, so cached entries are never invalidated.
type FileFetcher struct {
	root    string
	suffix  string
	timeout time.Duration
	cache   *lru.Cache[string, string]
}

// NewFileFetcher creates a fetcher rooted at root. suffix is appended to
// every encoded route (typically ".md"). A timeout of zero disables the
// per-fetch deadline. cacheSize <= 0 disables caching.
func NewFileFetcher(root, suffix string, timeout time.Duration, cacheSize int) (*FileFetcher, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("content root cannot be empty")
	}

	f := &FileFetcher{
		root:    root,
		suffix:  suffix,
		timeout: timeout,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, string](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create content cache: %w", err)
		}
		f.cache = cache
	}
	return f, nil
}

// Fetch returns the raw text of the document addressed by route. Every
// failure mode (unknown route, unreadable file, timeout, cancellation) is
// reported as a DocumentFetchError; callers performing a search treat any
// error as "no content available" for that entry.
func (f *FileFetcher) Fetch(ctx context.Context, route string) (string, error) {
	if strings.TrimSpace(route) == "" {
		return "", errors.NewDocumentFetchError(route, fmt.Errorf("empty route"))
	}

	if f.cache != nil {
		if content, ok := f.cache.Get(route); ok {
			return content, nil
		}
	}

	rel, err := EncodeRoutePath(route)
	if err != nil {
		return "", errors.NewDocumentFetchError(route, err)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	path := filepath.Join(f.root, filepath.FromSlash(rel)) + f.suffix
	content, err := readFile(ctx, path)
	if err != nil {
		return "", errors.NewDocumentFetchError(route, err)
	}

	if f.cache != nil {
		f.cache.Add(route, content)
	}
	return content, nil
}

// EncodeRoutePath converts a logical route into a root-relative slash path:
// each "/"-delimited segment is percent-encoded independently and the
// segments are rejoined. Empty, "." and ".." segments are rejected so a
// route can never escape the content root.
func EncodeRoutePath(route string) (string, error) {
	segments := strings.Split(route, "/")
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("invalid route segment %q", segment)
		}
		encoded[i] = url.PathEscape(segment)
	}
	return strings.Join(encoded, "/"), nil
}

// readFile reads path while honoring ctx. os.ReadFile itself cannot be
// interrupted, so the read runs in its own goroutine and the slow side is
// abandoned on timeout.
func readFile(ctx context.Context, path string) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", res.err
		}
		return string(res.data), nil
	}
}
