/*
Package store publishes a single current incarnation of a persistent trie to
concurrent clients.

The trie itself guarantees that any number of readers may walk any mix of
incarnations without locks. What it deliberately does not provide is one
linear stream of updates: two writers deriving from the same predecessor
produce two independent incarnations, and nothing merges them. A Store
supplies that missing discipline: writers are serialized, every write
derives from the latest published incarnation, and readers obtain consistent
snapshots which later writes never disturb.
*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.store'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.store")
}
