package trie

import (
	"sort"
	"strings"
)

// tnode is the immutable unit a trie is made of. A node maps single key bytes
// to child nodes; a value-bearing node additionally carries one type-erased
// value. Child nodes are shared: the same child may be reachable from many
// trie incarnations at once. A node is never modified after it became
// reachable from a published Trie; clone is the sole mutation point and it
// yields fresh, not-yet-published copies only.
type tnode struct {
	children map[byte]*tnode
	value    any
	hasValue bool
}

// child returns the child node reached over byte ch, or nil. Safe to call on
// a node with a nil children mapping.
func (node *tnode) child(ch byte) *tnode {
	return node.children[ch]
}

// clone makes a shallow copy of a node: the children mapping is copied, the
// child nodes themselves and the value are shared with the original. The
// mapping must be copied (not aliased) because the copy is about to be
// modified, while the original may still be reachable from published tries.
func (node *tnode) clone() tnode {
	cow := tnode{
		children: make(map[byte]*tnode, len(node.children)+1),
		value:    node.value,
		hasValue: node.hasValue,
	}
	for ch, chld := range node.children {
		cow.children[ch] = chld
	}
	return cow
}

// edges returns the node's child labels in ascending order, for stable output.
func (node *tnode) edges() []byte {
	e := make([]byte, 0, len(node.children))
	for ch := range node.children {
		e = append(e, ch)
	}
	sort.Slice(e, func(i, j int) bool { return e[i] < e[j] })
	return e
}

func (node *tnode) String() string {
	if node == nil {
		return "·"
	}
	b := strings.Builder{}
	b.WriteByte('[')
	for i, ch := range node.edges() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(ch)
	}
	b.WriteByte(']')
	if node.hasValue {
		b.WriteString("•")
	}
	return b.String()
}
