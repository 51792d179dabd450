package storage

import "io"

// ImageStore holds question illustrations keyed by the catalog's image_key.
type ImageStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	ContentType(key string) string
}
