// Package assets uploads product images to a cloud asset host and
// returns the durable URL a listing can publish with.
package assets

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Uploader sends a local file to an asset host. One attempt, no retry;
// a draft product is not publishable until the returned URL is set.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// UploadError reports a rejected or unreachable asset host.
type UploadError struct {
	Host string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload to %s failed: %v", e.Host, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// contentTypeFor guesses the MIME type from the file extension,
// defaulting to JPEG like the original uploader did.
func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "image/jpeg"
}
