package jsonschema

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Retriever fetches the JSON value for an external resource URI. It is
// called only at compile time, only for URIs not already
// present in the Registry, and only when the reference's base differs from
// any base already known. Implementations may block; the core imposes no
// timeout of its own.
type Retriever interface {
	Retrieve(ctx context.Context, uri string) (any, error)
}

// RetrieverFunc adapts a plain function to the Retriever interface.
type RetrieverFunc func(ctx context.Context, uri string) (any, error)

func (f RetrieverFunc) Retrieve(ctx context.Context, uri string) (any, error) {
	return f(ctx, uri)
}

// MapRetriever serves pre-registered resources out of memory, keyed by
// normalized base URI. Used for preregistered schemas (Compiler.WithResource)
// and for tests that must not hit the network or filesystem.
type MapRetriever map[string]any

func (m MapRetriever) Retrieve(_ context.Context, uri string) (any, error) {
	v, ok := m[NormalizeURI(uri)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
	}
	return v, nil
}

// FileRetriever serves `file:` URIs (and bare paths) rooted at Root.
// Grounded on compiler.go's Loaders map, which serves the same purpose for
// non-HTTP schemes but returns io.ReadCloser instead of a decoded value.
type FileRetriever struct {
	Root string
}

func (r FileRetriever) Retrieve(_ context.Context, uri string) (any, error) {
	p := strings.TrimPrefix(uri, "file://")
	if r.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(r.Root, p)
	}
	data, err := os.ReadFile(p) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRetrieverFailed, uri, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrJSONUnmarshal, uri, err)
	}
	return v, nil
}

// HTTPRetriever serves `http://`/`https://` URIs. Grounded on
// compiler.go's setupLoaders default HTTP loader.
type HTTPRetriever struct {
	Client *http.Client
}

func (r HTTPRetriever) Retrieve(ctx context.Context, uri string) (any, error) {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNetworkFetch, uri, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrInvalidStatusCode, uri, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataRead, uri, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrJSONUnmarshal, uri, err)
	}
	return v, nil
}

// multiRetriever dispatches to a scheme-keyed set of retrievers, falling
// back to a MapRetriever of preregistered resources first. This is what
// Compiler.Build actually installs: preregistered resources always win,
// then the caller's Retriever (if any), then the built-in file/http
// defaults.
type multiRetriever struct {
	preregistered MapRetriever
	user          Retriever
	byScheme      map[string]Retriever
}

func newMultiRetriever(user Retriever, preregistered MapRetriever) *multiRetriever {
	return &multiRetriever{
		preregistered: preregistered,
		user:          user,
		byScheme: map[string]Retriever{
			"http":  HTTPRetriever{},
			"https": HTTPRetriever{},
			"file":  FileRetriever{},
		},
	}
}

func (m *multiRetriever) Retrieve(ctx context.Context, uri string) (any, error) {
	if m.preregistered != nil {
		if v, err := m.preregistered.Retrieve(ctx, uri); err == nil {
			return v, nil
		}
	}
	if m.user != nil {
		if v, err := m.user.Retrieve(ctx, uri); err == nil {
			return v, nil
		}
	}
	if r, ok := m.byScheme[SchemeOf(uri)]; ok {
		return r.Retrieve(ctx, uri)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLoaderRegistered, uri)
}
