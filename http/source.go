// Package http provides byte access to remote music packages over HTTP.
//
// Source reads arbitrary byte ranges of a remote package without
// downloading it, which is how partial audio access works for
// network-hosted packages. Loader fetches and decodes whole packages,
// deduplicating concurrent fetches of the same URL.
package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrNetwork is returned when a remote fetch fails: connection errors,
// non-success status codes, or a server that cannot satisfy range requests.
var ErrNetwork = errors.New("musicpak/http: network failure")

// defaultTimeout bounds requests made with the shared client.
const defaultTimeout = 30 * time.Second

var (
	sharedOnce   sync.Once
	sharedClient *nethttp.Client
)

// defaultHTTPClient returns the process-wide client, created on first use.
func defaultHTTPClient() *nethttp.Client {
	sharedOnce.Do(func() {
		sharedClient = &nethttp.Client{Timeout: defaultTimeout}
	})
	return sharedClient
}

// Source implements random access reads against a remote package via
// HTTP range requests. It satisfies io.ReaderAt.
//
// The size, ETag, and Last-Modified of the remote content are captured
// when the source is created; later range requests carry If-Match and
// If-Unmodified-Since so a remote that changes mid-read fails loudly
// instead of returning spliced content.
type Source struct {
	url          string
	client       *nethttp.Client
	headers      nethttp.Header
	size         int64
	etag         string
	lastModified string
}

// Option configures a Source.
type Option func(*Source)

// WithClient sets the HTTP client used for requests.
func WithClient(client *nethttp.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithHeader sets a single header on each request.
func WithHeader(key, value string) Option {
	return func(s *Source) {
		if s.headers == nil {
			s.headers = make(nethttp.Header)
		}
		s.headers.Set(key, value)
	}
}

// NewSource creates a Source for the package at url.
// It probes the remote to determine the content size and to verify that
// range requests are supported.
func NewSource(url string, opts ...Option) (*Source, error) {
	s := &Source{url: url}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = defaultHTTPClient()
	}

	if err := s.probe(); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the total size of the remote content.
func (s *Source) Size() int64 {
	return s.size
}

// SourceID returns a stable identifier for the remote content: the ETag
// when the server provides one, otherwise the URL.
func (s *Source) SourceID() string {
	if s.etag != "" {
		return s.etag
	}
	return s.url
}

// ReadAt reads a byte range of the remote content into p.
// It follows the io.ReaderAt contract: reads past the end return io.EOF.
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrNetwork, off)
	}
	if off >= s.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	expected := len(p)
	if end >= s.size {
		end = s.size - 1
		expected = int(end - off + 1)
	}

	resp, err := s.rangeRequest(off, end)
	if err != nil {
		return 0, err
	}
	defer drainClose(resp)

	n, err := io.ReadFull(resp.Body, p[:expected])
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if expected < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadRange returns a reader over the byte range [off, off+length).
// The range is clamped to the remote size; a range starting at or past
// the end yields an empty reader with io.EOF.
func (s *Source) ReadRange(off, length int64) (io.ReadCloser, error) {
	if off < 0 || length < 0 {
		return nil, fmt.Errorf("%w: invalid range %d+%d", ErrNetwork, off, length)
	}
	if length == 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if off >= s.size {
		return io.NopCloser(bytes.NewReader(nil)), io.EOF
	}
	if length > s.size-off {
		length = s.size - off
	}

	resp, err := s.rangeRequest(off, off+length-1)
	if err != nil {
		return nil, err
	}
	return &rangeReadCloser{
		body:   resp.Body,
		reader: io.LimitReader(resp.Body, length),
	}, nil
}

// FetchAll downloads the entire remote content.
func (s *Source) FetchAll() ([]byte, error) {
	return fetchAll(s.client, s.url, s.headers)
}

// rangeRequest performs a ranged GET and validates the response status.
func (s *Source) rangeRequest(off, end int64) (*nethttp.Response, error) {
	req, err := s.newRequest(nethttp.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, end))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch resp.StatusCode {
	case nethttp.StatusPartialContent:
		return resp, nil
	case nethttp.StatusOK:
		drainClose(resp)
		return nil, fmt.Errorf("%w: range requests not supported", ErrNetwork)
	default:
		drainClose(resp)
		return nil, fmt.Errorf("%w: range request failed: %s", ErrNetwork, resp.Status)
	}
}

// probe determines the remote size via a one-byte range request and
// records the validators used to pin later reads to the same content.
func (s *Source) probe() error {
	req, err := s.newRequest(nethttp.MethodGet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Range", "bytes=0-0")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer drainClose(resp)

	if resp.StatusCode != nethttp.StatusPartialContent {
		if resp.StatusCode == nethttp.StatusOK {
			return fmt.Errorf("%w: range requests not supported", ErrNetwork)
		}
		return fmt.Errorf("%w: range probe failed: %s", ErrNetwork, resp.Status)
	}

	size, err := parseContentRange(resp.Header.Get("Content-Range"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	s.size = size
	s.etag = resp.Header.Get("ETag")
	s.lastModified = resp.Header.Get("Last-Modified")
	return nil
}

func (s *Source) newRequest(method string) (*nethttp.Request, error) {
	req, err := nethttp.NewRequest(method, s.url, nil)
	if err != nil {
		return nil, err
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "identity")
	}
	if s.etag != "" && req.Header.Get("If-Match") == "" {
		req.Header.Set("If-Match", s.etag)
	}
	if s.lastModified != "" && req.Header.Get("If-Unmodified-Since") == "" {
		req.Header.Set("If-Unmodified-Since", s.lastModified)
	}
	return req, nil
}

// fetchAll downloads the full content at url.
func fetchAll(client *nethttp.Client, url string, headers nethttp.Header) ([]byte, error) {
	req, err := nethttp.NewRequest(nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer drainClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetch failed: %s", ErrNetwork, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return data, nil
}

// drainClose discards any unread body so the connection can be reused.
func drainClose(resp *nethttp.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

type rangeReadCloser struct {
	body   io.ReadCloser
	reader io.Reader
}

func (r *rangeReadCloser) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r *rangeReadCloser) Close() error {
	_, _ = io.Copy(io.Discard, r.body)
	return r.body.Close()
}

func parseContentRange(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "bytes ") {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	parts := strings.SplitN(strings.TrimPrefix(value, "bytes "), "/", 2)
	if len(parts) != 2 || parts[1] == "*" {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	size, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || size < 0 {
		return 0, fmt.Errorf("invalid Content-Range %q", value)
	}
	return size, nil
}
