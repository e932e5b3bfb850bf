package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

// Memory keeps blobs in memory. It is used for development and tests.
type Memory struct {
	BaseURL string

	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemory(baseURL string) *Memory {
	return &Memory{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		blobs:   map[string][]byte{},
	}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Upload(_ context.Context, key string, content io.Reader, _ string, _ Access) (Blob, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return Blob{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	url := m.BaseURL + "/" + key
	m.blobs[url] = buf.Bytes()

	return Blob{URL: url, Pathname: key}, nil
}

func (m *Memory) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[url]; !ok {
		return ErrNotFound
	}

	delete(m.blobs, url)
	return nil
}

// Get returns the content of a blob.
func (m *Memory) Get(url string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blobs[url]
	return b, ok
}
