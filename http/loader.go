package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"

	"golang.org/x/sync/singleflight"

	"github.com/rgeorgiev/musicpak"
)

// Loader fetches and decodes remote packages.
//
// Concurrent loads of the same URL share a single download via
// singleflight; each caller still receives its own independently decoded
// Package, so the copy-out discipline of the store is preserved.
type Loader struct {
	client *nethttp.Client
	logger *slog.Logger
	group  singleflight.Group
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// LoaderWithClient sets the HTTP client used for downloads.
func LoaderWithClient(client *nethttp.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// LoaderWithLogger sets the logger for fetch diagnostics.
// By default nothing is logged.
func LoaderWithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader. Without options it uses the shared
// process-wide client with its default timeout.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = defaultHTTPClient()
	}
	return l
}

// log returns the logger, falling back to a discard logger if nil.
func (l *Loader) log() *slog.Logger {
	if l.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.logger
}

// Load downloads the package at url and decodes it.
//
// Download failures are reported as ErrNetwork; bytes that are not a
// valid package are reported as musicpak.ErrInvalidFormat. The context
// bounds the download.
func (l *Loader) Load(ctx context.Context, url string) (*musicpak.Package, error) {
	if url == "" {
		return nil, musicpak.ErrInvalidParam
	}

	data, err := l.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	l.log().Debug("package downloaded", "url", url, "bytes", len(data))
	return musicpak.LoadBuffer(data)
}

// fetch downloads url, deduplicating concurrent downloads of the same URL.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	result, err, shared := l.group.Do(url, func() (any, error) {
		req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		defer drainClose(resp)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: fetch %s: %s", ErrNetwork, url, resp.Status)
		}

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.log().Debug("download shared with concurrent caller", "url", url)
	}
	return result.([]byte), nil
}
