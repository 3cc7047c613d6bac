package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub key-value store
// ---------------------------------------------------------------------------

type stubStore struct {
	data    map[string]string
	writes  []string // keys in the order Set was called
	getErr  error
	failKey string // Set returns an error for this key
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string]string)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("disk full")
	}
	s.writes = append(s.writes, key)
	s.data[key] = value
	return nil
}

func (s *stubStore) Ping(context.Context) error { return nil }

func ptr[T any](v T) *T { return &v }
