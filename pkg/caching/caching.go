// Package caching provides a file-based cache with a TTL for MediaWiki
// API responses, so repeated runs don't re-issue identical queries.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores response bodies on disk, keyed by request URL.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates the cache directory if needed.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// filename hashes the request URL into a fixed-length cache filename.
func (c *Cache) filename(requestURL string) string {
	sum := sha256.Sum256([]byte(requestURL))
	return filepath.Join(c.dir, fmt.Sprintf("%x", sum))
}

// Get returns the cached response body and true on a fresh hit.
func (c *Cache) Get(requestURL string) ([]byte, bool) {
	path := c.filename(requestURL)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a response body for the given request URL.
func (c *Cache) Set(requestURL string, body []byte) error {
	if err := os.WriteFile(c.filename(requestURL), body, 0644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}
