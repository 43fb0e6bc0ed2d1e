package trie

import "fmt"

// pathTo walks from the root along key, recording one slot per consumed key
// byte. The walk stops early the first time a byte has no matching child;
// the remainder of the key is then treated as absent. It returns the
// recorded path and the landing node (nil if absent); len(path) is the
// number of key bytes consumed.
func (tree Trie) pathTo(key string) (slotPath, *tnode) {
	path := make(slotPath, 0, len(key))
	node := tree.root
	for i := 0; i < len(key) && node != nil; i++ {
		ch := key[i]
		path = append(path, slot{node: node, char: ch})
		node = node.child(ch)
	}
	return path, node
}

// valueLeaf builds the terminal node for an insertion. If a node already
// lives at the key's full depth, its children mapping is inherited, keeping
// any subtree rooted there in place. The mapping itself can be aliased here:
// neither the old node nor the leaf will ever modify it.
func valueLeaf(old *tnode, value any) *tnode {
	leaf := &tnode{value: value, hasValue: true}
	if old != nil {
		leaf.children = old.children
	}
	return leaf
}

// chainSuffix synthesizes plain nodes for the unmatched key suffix,
// bottom-up: each node holds a single child entry for the next byte.
func chainSuffix(suffix string, child *tnode) *tnode {
	for i := len(suffix) - 1; i >= 0; i-- {
		child = &tnode{children: map[byte]*tnode{suffix[i]: child}}
	}
	return child
}

// cloneSeam reconnects one level of the old path to the rebuilt child below
// it: the visited node is cloned and its edge for the slot's byte repointed.
// All sibling subtrees stay shared with the predecessor incarnation.
func cloneSeam(s slot, child *tnode) *tnode {
	cow := s.node.clone()
	cow.children[s.char] = child
	return &cow
}

// pruneSeam is cloneSeam for deletions: an absent rebuilt child removes the
// parent's edge entirely, and an ancestor left childless and valueless by
// that is itself pruned, propagating absence further up.
func pruneSeam(s slot, child *tnode) *tnode {
	cow := s.node.clone()
	if child != nil {
		cow.children[s.char] = child
		return &cow
	}
	assertThat(cow.child(s.char) != nil, "deletion path lost its link for '%c'", s.char)
	delete(cow.children, s.char)
	if len(cow.children) == 0 && !cow.hasValue {
		return nil
	}
	return &cow
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("trie: "+msg, msgargs...)
		panic(msg)
	}
}
