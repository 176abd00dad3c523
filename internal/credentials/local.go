package credentials

import (
	"strings"

	"enhancer/internal/catalog"
)

// LocalStore holds provider API keys loaded from the environment at startup.
// Keys are read-only after construction, so lookups need no locking.
type LocalStore struct {
	keys map[catalog.Provider]string
}

// NewLocalStore copies the given key map, dropping blank entries.
func NewLocalStore(keys map[catalog.Provider]string) *LocalStore {
	s := &LocalStore{keys: make(map[catalog.Provider]string, len(keys))}
	for p, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		s.keys[p] = k
	}
	return s
}

// Key returns the stored credential for a provider, if any.
func (s *LocalStore) Key(p catalog.Provider) (string, bool) {
	k, ok := s.keys[p]
	return k, ok
}

// Has reports whether a non-empty credential is stored for the provider.
func (s *LocalStore) Has(p catalog.Provider) bool {
	_, ok := s.keys[p]
	return ok
}
