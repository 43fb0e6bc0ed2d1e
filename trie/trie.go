package trie

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- A new modified incarnation of a trie always is reflected by a new tree.root;
  every node off the modified key's path is borrowed by reference from the
  predecessor and stays untouched.

*/

import (
	"github.com/npillmayer/persistent/maybe"
)

// Trie is an in-memory persistent character trie, mapping string keys to
// values of arbitrary type. An empty instance is usable as an empty trie,
// i.e. this is legal:
//
//     v := trie.Trie{}.With("alpha", 1)
//
// returning a trie containing the single key "alpha" associated with 1.
//
// A Trie value is a handle on one immutable incarnation of the mapping.
// Updates return new incarnations and never touch the receiver, which makes
// any number of concurrent readers safe across any mix of incarnations.
// Keys are traversed byte-wise, one child link per byte.
type Trie struct {
	root *tnode
}

// Immutable constructs an empty trie.
// Use it like this:
//
//     v := trie.Immutable().With("alpha", 1)
//     one, found := trie.Get[int](v, "alpha")
//
func Immutable() Trie {
	return Trie{}
}

// --- API -------------------------------------------------------------------

// Get locates key in a trie and returns the value stored for it, if present.
// The stored value must be of type T: a value of any other dynamic type is
// reported as a miss, exactly like a missing key. Recovering a value under
// the wrong type is not an error, it is absence. If key is not found, the
// zero value for type T will be returned, together with found=false.
//
// Get runs in O(len(key)), allocates nothing and never mutates the trie.
func Get[T any](tree Trie, key string) (T, bool) {
	node := tree.root
	for i := 0; i < len(key) && node != nil; i++ {
		node = node.child(key[i])
	}
	var none T
	if node == nil || !node.hasValue {
		return none, false
	}
	value, ok := node.value.(T)
	if !ok {
		tracer().Debugf("get: value for '%s' has foreign type %T", key, node.value)
		return none, false
	}
	return value, true
}

// Lookup is Get with the result wrapped in a Maybe.
func Lookup[T any](tree Trie, key string) maybe.Maybe[T] {
	if value, found := Get[T](tree, key); found {
		return maybe.Just(value)
	}
	return maybe.Nothing[T]()
}

// Has reports whether a value is stored for key, of whatever type.
func (tree Trie) Has(key string) bool {
	node := tree.root
	for i := 0; i < len(key) && node != nil; i++ {
		node = node.child(key[i])
	}
	return node != nil && node.hasValue
}

// With returns a copy of a trie with value stored for key. If an entry for
// key is already present, the value will be replaced (in a new incarnation
// of the trie, nevertheless); the new value's dynamic type need not match
// the old one, a key's type is whatever the most recent With established.
// An empty key stores the value at the root.
//
// With allocates O(len(key)) new nodes; the receiver is left unchanged and
// shares every subtree off the key's path with the new incarnation.
func (tree Trie) With(key string, value any) Trie {
	path, landing := tree.pathTo(key)
	tracer().Debugf("insert: matched path = %s", path)
	leaf := valueLeaf(landing, value)
	below := chainSuffix(key[len(path):], leaf)
	newRoot := path.foldR(cloneSeam, below)
	return Trie{root: newRoot}
}

// WithDeleted returns a copy of a trie with key deleted, if present. If no
// value is stored for key, the receiver is returned unchanged; removing an
// absent key is a no-op, not an error and not a copy.
//
// A deleted node which still has children is demoted to a valueless inner
// node, keeping its subtree; nodes left without value and children are
// pruned, so no reachable node is ever both childless and valueless.
func (tree Trie) WithDeleted(key string) Trie {
	path, landing := tree.pathTo(key)
	if len(path) < len(key) || landing == nil || !landing.hasValue {
		tracer().Debugf("delete: '%s' not present, nothing to do", key)
		return tree
	}
	tracer().Debugf("delete: matched path = %s", path)
	var end *tnode
	if len(landing.children) > 0 {
		end = &tnode{children: landing.children} // demoted to a plain node
	}
	newRoot := path.foldR(pruneSeam, end)
	return Trie{root: newRoot}
}
