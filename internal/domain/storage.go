package domain

import "context"

// Uploader is the blob-storage port: accept bytes, return a public URL.
// Used for post cover images and other authored media.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
