package store

import (
	"sync"

	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/trie"
)

// Store hands out immutable snapshots of a single logical mapping, backed by
// a persistent trie. Readers take a snapshot and proceed without any lock;
// writers are serialized, so the sequence of published incarnations is
// linear and no two writers ever derive from the same predecessor.
//
// The zero value is a usable store holding an empty mapping.
type Store struct {
	rootMu  sync.RWMutex // guards current
	writeMu sync.Mutex   // serializes writers across derive-and-publish
	current trie.Trie
}

// New creates a store holding an empty mapping.
func New() *Store {
	return &Store{current: trie.Immutable()}
}

// Snapshot returns the currently published incarnation. The handle stays
// valid and consistent indefinitely; later writes publish new incarnations
// and never affect it.
func (s *Store) Snapshot() trie.Trie {
	s.rootMu.RLock()
	defer s.rootMu.RUnlock()
	return s.current
}

// Get reads key from the current incarnation. Missing key and type mismatch
// are both reported as absence, see trie.Get.
func Get[T any](s *Store, key string) (T, bool) {
	return trie.Get[T](s.Snapshot(), key)
}

// Lookup is Get with the result wrapped in a Maybe.
func Lookup[T any](s *Store, key string) maybe.Maybe[T] {
	return trie.Lookup[T](s.Snapshot(), key)
}

// Has reports whether a value is stored for key in the current incarnation.
func (s *Store) Has(key string) bool {
	return s.Snapshot().Has(key)
}

// Put stores value for key in a new incarnation and publishes it.
func (s *Store) Put(key string, value any) {
	s.Update(func(v trie.Trie) trie.Trie {
		return v.With(key, value)
	})
}

// Remove deletes key in a new incarnation and publishes it. Removing an
// absent key leaves the current incarnation in place.
func (s *Store) Remove(key string) {
	s.Update(func(v trie.Trie) trie.Trie {
		return v.WithDeleted(key)
	})
}

// Update applies f to the latest incarnation and publishes the result,
// atomically with respect to other writers. f runs while the writer lock is
// held: it must be a pure derivation and must not call back into the store.
func (s *Store) Update(f func(trie.Trie) trie.Trie) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	next := f(s.Snapshot())
	s.rootMu.Lock()
	s.current = next
	s.rootMu.Unlock()
	tracer().Debugf("store: published new incarnation")
}
