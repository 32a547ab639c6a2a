package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
)

// LoadResult is the outcome of one load attempt. Exactly one of Text (OK)
// or Reason (!OK) is meaningful. Status is the HTTP status when one was
// received.
type LoadResult struct {
	OK     bool
	Text   string
	Reason string
	Status int
}

// Success builds a successful result.
func Success(text string) LoadResult {
	return LoadResult{OK: true, Text: text}
}

// Failure builds a failed result.
func Failure(reason string) LoadResult {
	return LoadResult{Reason: reason}
}

// Loader fetches the raw text of a document. Implementations report every
// failure in the result; they never touch the view.
type Loader interface {
	Load(ctx context.Context, filename string) LoadResult
}

// HTTPLoader fetches documents over HTTP from the directory one level above
// the viewer page. There are no retries and no client timeout.
type HTTPLoader struct {
	viewerURL *url.URL
	client    *http.Client
}

// NewHTTPLoader creates a loader for the viewer page at viewerURL. A nil
// client means a plain http.Client.
func NewHTTPLoader(viewerURL string, client *http.Client) (*HTTPLoader, error) {
	u, err := url.Parse(viewerURL)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("viewer url %q must be absolute", viewerURL)
	}
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPLoader{viewerURL: u, client: client}, nil
}

// DocumentURL is the URL fetched for filename: "../<filename>" resolved
// against the viewer page. filename is parsed as a relative reference, so
// "?" and "#" in it start a query and a fragment.
func (l *HTTPLoader) DocumentURL(filename string) (string, error) {
	ref, err := url.Parse("../" + filename)
	if err != nil {
		return "", fmt.Errorf("invalid document url: %w", err)
	}
	return l.viewerURL.ResolveReference(ref).String(), nil
}

// Load issues a single GET for filename.
func (l *HTTPLoader) Load(ctx context.Context, filename string) LoadResult {
	target, err := l.DocumentURL(filename)
	if err != nil {
		return Failure(err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Failure(err.Error())
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Failure(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LoadResult{
			Reason: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
			Status: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoadResult{Reason: err.Error(), Status: resp.StatusCode}
	}
	return LoadResult{OK: true, Text: string(body), Status: resp.StatusCode}
}

// FSLoader reads documents from a filesystem rooted at the documents
// directory. fs.FS rejects paths that climb out of the root.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load reads filename from the filesystem.
func (l *FSLoader) Load(ctx context.Context, filename string) LoadResult {
	if err := ctx.Err(); err != nil {
		return Failure(err.Error())
	}
	data, err := fs.ReadFile(l.fsys, filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{
				Reason: fmt.Sprintf("status: %d: %v", http.StatusNotFound, err),
				Status: http.StatusNotFound,
			}
		}
		return Failure(err.Error())
	}
	return Success(string(data))
}
