// Package storage provides blob storage for generated documents.
package storage

import (
	"context"
	"regexp"
)

// Storage is the blob store contract the document pipeline depends on.
type Storage interface {
	// Upload stores the bytes under key and returns a URL the document can
	// be fetched from.
	Upload(ctx context.Context, key string, data []byte, contentType, filename string) (string, error)
	// Download fetches the bytes stored under key.
	Download(ctx context.Context, key string) ([]byte, error)
	// PublicURL resolves a stable public URL for key, when the store has
	// one configured. Preferred over the URL returned by Upload.
	PublicURL(key string) (string, bool)
}

var keySegmentUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeKeySegment replaces every character outside [a-zA-Z0-9._-] with an
// underscore so document numbers are safe to embed in storage keys and
// filenames.
func SanitizeKeySegment(s string) string {
	return keySegmentUnsafe.ReplaceAllString(s, "_")
}
