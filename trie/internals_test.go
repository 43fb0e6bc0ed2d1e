package trie

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// test internals

func TestInternalPathToInEmptyTrie(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	path, landing := Trie{}.pathTo("ab")
	if len(path) > 0 {
		t.Errorf("expected path in empty trie to be empty, is %s", path)
	}
	if landing != nil {
		t.Errorf("expected landing node to be absent, is %s", landing)
	}
}

func TestInternalPathToFullMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	path, landing := v.pathTo("ab")
	if len(path) != 2 {
		t.Fatalf("expected path of length 2, is %s", path)
	}
	if path[0].node != v.root || path[0].char != 'a' {
		t.Errorf("expected first slot to leave the root over 'a', is %s", path[0])
	}
	if landing == nil || !landing.hasValue {
		t.Errorf("expected landing node to hold a value, is %s", landing)
	}
}

func TestInternalPathToStopsAtFirstMiss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	path, landing := v.pathTo("axyz")
	if len(path) != 2 {
		t.Fatalf("expected walk to consume 'a' and stop on 'x', path = %s", path)
	}
	if landing != nil {
		t.Errorf("expected landing node to be absent, is %s", landing)
	}
}

func TestInternalChainSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	leaf := valueLeaf(nil, 7)
	top := chainSuffix("xyz", leaf)
	node := top
	for _, ch := range []byte("xyz") {
		if node == nil || len(node.children) != 1 {
			t.Fatalf("expected synthesized node with a single child for '%c', is %s", ch, node)
		}
		node = node.child(ch)
	}
	if node != leaf {
		t.Error("expected chain to end in the terminal value node, doesn't")
	}
	if top2 := chainSuffix("", leaf); top2 != leaf {
		t.Error("expected empty suffix to chain to the leaf itself, doesn't")
	}
}

func TestInternalValueLeafInheritsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	old := v.root.child('a')
	leaf := valueLeaf(old, 9)
	if !leaf.hasValue {
		t.Error("expected terminal node to carry the value, doesn't")
	}
	if leaf.child('b') != old.child('b') {
		t.Error("expected terminal node to inherit the old children, doesn't")
	}
}

func TestInternalCloneSharesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	node := v.root.child('a')
	cow := node.clone()
	if cow.child('b') != node.child('b') {
		t.Error("expected clone to share child nodes, doesn't")
	}
	cow.children['z'] = &tnode{value: 0, hasValue: true}
	if node.child('z') != nil {
		t.Error("expected clone to own its children mapping; original was modified")
	}
}

func TestInternalCloneSeam(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	repl := &tnode{value: 99, hasValue: true}
	cow := cloneSeam(slot{node: v.root, char: 'a'}, repl)
	if cow == v.root {
		t.Fatal("expected seam to produce a fresh node")
	}
	if cow.child('a') != repl {
		t.Error("expected seam to repoint edge 'a' to the rebuilt child, doesn't")
	}
	if v.root.child('a') == repl {
		t.Error("published node was modified by cloneSeam")
	}
}

func TestInternalPruneSeam(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	// removing the sole child of a valueless node prunes the node itself
	inner := v.root.child('a').child('b') // valueless, one child 'c'
	if got := pruneSeam(slot{node: inner, char: 'c'}, nil); got != nil {
		t.Errorf("expected childless valueless node to be pruned, got %s", got)
	}
	// a node with a value survives losing its last child
	withValue := v.root.child('a') // carries a value
	got := pruneSeam(slot{node: withValue, char: 'b'}, nil)
	if got == nil || !got.hasValue {
		t.Fatalf("expected value node to survive pruning of its child, got %s", got)
	}
	if got.child('b') != nil {
		t.Error("expected pruned edge 'b' to be removed from the mapping, isn't")
	}
}

func TestInternalFoldROrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.trie")
	defer teardown()
	//
	v := createMockTrie()
	path, landing := v.pathTo("abc")
	leaf := valueLeaf(landing, 9)
	newRoot := path.foldR(cloneSeam, leaf)
	if newRoot == v.root {
		t.Fatal("expected fold to produce a fresh root")
	}
	if newRoot.child('a').child('b').child('c') != leaf {
		t.Error("expected fold to rebuild the path down to the terminal node, didn't")
	}
}

// ---------------------------------------------------------------------------

func createMockTrie() Trie { // keys: "a" ↦ 1, "abc" ↦ 3
	leafC := &tnode{value: 3, hasValue: true}
	nodeB := &tnode{children: map[byte]*tnode{'c': leafC}}
	nodeA := &tnode{children: map[byte]*tnode{'b': nodeB}, value: 1, hasValue: true}
	root := &tnode{children: map[byte]*tnode{'a': nodeA}}
	return Trie{root: root}
}
