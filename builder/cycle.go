// File: cycle.go
// Role: check_chain and cycle collapse.
// AI-HINT (file):
//   - Cycle elimination is rewriting, not in-place unification: collapse
//     turns the collapsed neighbourhood back into inclusions and
//     re-inserts them through the single AddInclusion path, so
//     the no-duplicate-edge / no-self-loop invariants stay enforced in one
//     place.

package builder

import "github.com/katalvlaran/ifscs/ifgraph"

// checkChain looks for a chain of targetLabel-labelled edges from id1 back to id2,
// walking backward (fold_pred) from id1. It returns the node ids along a
// successful branch, including id1, or ok==false if no such chain exists or
// the cycle-detection budget is exhausted (a silent, correctness-preserving
// degradation).
func (b *Builder[V, C]) checkChain(targetLabel ifgraph.Label, id1, id2 int) (chain []int, ok bool) {
	visited := make(map[int]bool)
	return b.dfsChain(id1, id2, targetLabel, visited)
}

type chainResult struct {
	path  []int
	found bool
}

func (b *Builder[V, C]) dfsChain(cur, target int, targetLabel ifgraph.Label, visited map[int]bool) ([]int, bool) {
	if b.budget <= 0 {
		return nil, false
	}
	if visited[cur] {
		return nil, false
	}
	visited[cur] = true
	b.budget--

	if cur == target {
		return []int{cur}, true
	}

	res := ifgraph.FoldPred(b.g, cur, chainResult{}, func(acc chainResult, nbr int, label ifgraph.Label) chainResult {
		if acc.found || label != targetLabel {
			return acc
		}
		if path, ok := b.dfsChain(nbr, target, targetLabel, visited); ok {
			return chainResult{path: path, found: true}
		}
		return acc
	})
	if !res.found {
		return nil, false
	}
	return append([]int{cur}, res.path...), true
}

// collapseCycle merges the equivalence chain C into its
// minimum-id representative: cross edges into and out of the chain are
// recorded as inclusions against the representative, every other id in the
// chain is removed from the graph and rebound to the representative in the
// id map, and the recorded inclusions are then re-inserted with cycle
// detection disabled.
func (b *Builder[V, C]) collapseCycle(chain []int) error {
	rep := chain[0]
	for _, id := range chain[1:] {
		if id < rep {
			rep = id
		}
	}

	inChain := make(map[int]bool, len(chain))
	for _, id := range chain {
		inChain[id] = true
	}

	type emission struct{ src, dst int }
	var emitted []emission

	for _, r := range chain {
		if r == rep {
			continue
		}
		ifgraph.FoldPred(b.g, r, struct{}{}, func(_ struct{}, s int, _ ifgraph.Label) struct{} {
			if !inChain[s] {
				emitted = append(emitted, emission{src: s, dst: rep})
			}
			return struct{}{}
		})
		ifgraph.FoldSucc(b.g, r, struct{}{}, func(_ struct{}, d int, _ ifgraph.Label) struct{} {
			if !inChain[d] {
				emitted = append(emitted, emission{src: rep, dst: d})
			}
			return struct{}{}
		})
	}

	for _, r := range chain {
		if r == rep {
			continue
		}
		b.g.RemoveNode(r)
	}
	for key, id := range b.ids {
		if inChain[id] && id != rep {
			b.ids[key] = rep
		}
	}

	scratch := newSegmentSet()
	for _, em := range emitted {
		inc := newAtomicInclusionByIDs(b, em.src, em.dst)
		if err := b.AddInclusion(false, scratch, inc); err != nil {
			return err
		}
	}

	return nil
}
