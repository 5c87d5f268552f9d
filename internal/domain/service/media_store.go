package service

import (
	"context"
	"io"
)

// MediaStore defines the interface for storing uploaded media, such as
// food item cover images.
type MediaStore interface {
	// Save writes the content under the given key and returns a reference
	// that can later be passed to Open.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Open reads back the content stored under a reference, along with the
	// content type it was saved with.
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)
}
