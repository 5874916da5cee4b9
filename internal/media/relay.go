// Package media relays uploaded images to the remote media host and removes
// them again when the record that referenced them changes or goes away.
package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Uploader is what the resource handlers see. Upload returns the public URL
// the stored record should reference; Delete takes that URL back.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, rawURL string) error
}

// ObjectKey derives the remote object key from a public URL previously
// returned by Upload. Query strings are ignored and dots inside the filename
// are kept, so URLs like .../posts/a.b.c.png?v=2 resolve correctly.
func ObjectKey(baseURL, rawURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid media url %q: %w", rawURL, err)
	}
	if u.Host != base.Host {
		return "", fmt.Errorf("media url %q is not under %q", rawURL, baseURL)
	}

	prefix := strings.TrimSuffix(base.Path, "/") + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("media url %q is not under %q", rawURL, baseURL)
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", fmt.Errorf("media url %q has no object key", rawURL)
	}
	return key, nil
}
