/*
Package trie implements a persistent (immutable) in-memory character trie.

A trie maps string keys to values, consuming one key byte per tree level.
This trie is persistent: no operation ever modifies a trie in place. Updates
return a new incarnation of the trie which shares every subtree off the
modified key's path with its predecessor (path copying). Old incarnations
stay valid and consistent indefinitely, which makes any number of concurrent
readers safe across any mix of versions, without locks.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.trie'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.trie")
}
