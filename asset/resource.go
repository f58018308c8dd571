package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A Resource wraps a streamable mesh file that is either stored locally or
// fetched over http/https.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	if r.IsRemote() {
		return r.url.String()
	}
	return r.url.Path
}

// Returns the base name of this resource without any directory or URL prefix.
func (r *Resource) Name() string {
	if r.IsRemote() {
		return path.Base(r.url.Path)
	}
	return filepath.Base(r.url.Path)
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a resource data stream. Existing local files are opened as-is; other
// paths with an http or https scheme are fetched using the net/http package
// and anything without a scheme is treated as a local file. The caller must
// close the returned resource.
func NewResource(pathToResource string) (*Resource, error) {
	// Local file names may contain characters with a special meaning in URLs
	if _, err := os.Stat(pathToResource); err == nil {
		return openLocal(&url.URL{Path: filepath.ToSlash(pathToResource)})
	}

	// Replace backslashes with forward slashes and try parsing as a URL
	u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	// Windows drive letters are parsed as a single-letter scheme
	if len(u.Scheme) == 1 {
		u = &url.URL{Path: filepath.ToSlash(pathToResource)}
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		return openLocal(u)
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %w", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

func openLocal(u *url.URL) (*Resource, error) {
	f, err := os.Open(filepath.Clean(filepath.FromSlash(u.Path)))
	if err != nil {
		return nil, fmt.Errorf("resource: could not open '%s': %w", u.Path, err)
	}
	return &Resource{
		ReadCloser: f,
		url:        u,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        &url.URL{Path: name},
	}
}
