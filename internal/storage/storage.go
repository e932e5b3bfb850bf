// Package storage stores user uploaded files in a blob store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

var ErrNotFound = errors.New("there is no blob for this URL")

type Access string

const (
	AccessPublic  Access = "public"
	AccessPrivate Access = "private"
)

// Blob is a stored object.
type Blob struct {
	URL      string
	Pathname string
}

// Provider is a blob store.
type Provider interface {
	// Name identifies the provider in stored object records.
	Name() string
	Upload(ctx context.Context, key string, content io.Reader, contentType string, access Access) (Blob, error)
	Delete(ctx context.Context, url string) error
}

var unsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SafeName replaces all characters of a file name that are not
// letters, digits, dots, dashes or underscores with underscores.
func SafeName(name string) string {
	return unsafe.ReplaceAllString(name, "_")
}

// UploadKey returns the key for a file a user uploads at a point in time.
// The user ID is a single path segment of the key.
func UploadKey(userID string, at time.Time, name string) string {
	segment := SafeName(userID)
	if strings.Trim(segment, ".") == "" {
		segment = strings.Repeat("_", max(len(segment), 1))
	}

	return fmt.Sprintf("uploads/%s/%d-%s", segment, at.UnixMilli(), SafeName(name))
}
