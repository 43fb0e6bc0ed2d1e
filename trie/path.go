package trie

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds one step of a recorded walk: the node visited, together with the
// key byte used to descend from it.
type slot struct {
	node *tnode
	char byte
}

func (s slot) String() string {
	return fmt.Sprintf("%c@%s", s.char, s.node)
}

// --- Path ------------------------------------------------------------------

// slotPath records the nodes visited while matching a key, top-down.
type slotPath []slot

func (path slotPath) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

// foldR rebuilds a trie bottom-up: starting with zero as the deepest rebuilt
// node, every step combines the next slot (deepest first) with the rebuilt
// child from the level below, producing one new node per recorded depth.
func (path slotPath) foldR(f func(slot, *tnode) *tnode, zero *tnode) *tnode {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
