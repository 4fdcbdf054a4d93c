// File: checkrep.go
// Role: Representation-invariant checking for test and debug builds.
//
// A broken invariant here is a defect inside this package, never a
// recoverable caller error, so a violation panics instead of returning.
// The checks are O(V+E) per mutation and stay disabled outside tests.
package dirgraph

import "fmt"

// repCheckEnabled gates the full invariant sweep after every mutation.
// Tests flip it through the export_test hook.
var repCheckEnabled = false

// checkRep panics if the representation invariant is violated:
//
//   - index and slots agree: every registered label points at a used slot
//     carrying that label, and no two labels share a slot.
//   - edgeAt agrees with the arena: every recorded triple is stored at its
//     recorded position.
//   - adjacency consistency: every edge index in a slot's outgoing list
//     appears exactly once in the destination slot's incoming list, and
//     vice versa; no list contains duplicates.
func (g *Graph[N]) checkRep() {
	if !repCheckEnabled {
		return
	}

	seenSlot := make(map[int]struct{}, len(g.index))
	for label, pos := range g.index {
		if pos < 0 || pos >= len(g.slots) {
			panic(fmt.Sprintf("dirgraph: slot index %d out of range", pos))
		}
		if _, dup := seenSlot[pos]; dup {
			panic(fmt.Sprintf("dirgraph: slot %d registered twice", pos))
		}
		seenSlot[pos] = struct{}{}
		if !g.slots[pos].used {
			panic(fmt.Sprintf("dirgraph: label %v points at a free slot", label))
		}
		if g.slots[pos].label != label {
			panic(fmt.Sprintf("dirgraph: slot %d label mismatch", pos))
		}
	}

	for e, ei := range g.edgeAt {
		if ei < 0 || ei >= len(g.edges) || g.edges[ei] != e {
			panic(fmt.Sprintf("dirgraph: edge catalog entry %v desynced from arena", e))
		}
	}

	for label, pos := range g.index {
		assertNoDup(g.slots[pos].out, "outgoing", label)
		assertNoDup(g.slots[pos].in, "incoming", label)
		for _, ei := range g.slots[pos].out {
			e := g.edges[ei]
			if e.From != label {
				panic(fmt.Sprintf("dirgraph: outgoing edge %v stored under wrong node", e))
			}
			if countIndex(g.slots[g.index[e.To]].in, ei) != 1 {
				panic(fmt.Sprintf("dirgraph: edge %v missing paired incoming entry", e))
			}
		}
		for _, ei := range g.slots[pos].in {
			e := g.edges[ei]
			if e.To != label {
				panic(fmt.Sprintf("dirgraph: incoming edge %v stored under wrong node", e))
			}
			if countIndex(g.slots[g.index[e.From]].out, ei) != 1 {
				panic(fmt.Sprintf("dirgraph: edge %v missing paired outgoing entry", e))
			}
		}
	}
}

func assertNoDup[N comparable](list []int, direction string, label N) {
	seen := make(map[int]struct{}, len(list))
	for _, ei := range list {
		if _, dup := seen[ei]; dup {
			panic(fmt.Sprintf("dirgraph: duplicate %s edge index at node %v", direction, label))
		}
		seen[ei] = struct{}{}
	}
}

func countIndex(list []int, ei int) int {
	n := 0
	for _, v := range list {
		if v == ei {
			n++
		}
	}

	return n
}
