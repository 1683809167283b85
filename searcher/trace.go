package searcher

import (
	"clobber/game"
	"fmt"
	"sync"

	"github.com/awalterschulze/gographviz"
)

const rootParent = -1

type traceNode struct {
	parent     int
	via        game.Move
	hash       game.StateHash
	depth      int
	maximizing bool
	score      int
	cutoff     bool
}

// Tracer records the search tree for offline inspection. It is safe for use
// by a parallel search. A nil *Tracer records nothing.
type Tracer struct {
	mu    sync.Mutex
	nodes []traceNode
}

func NewTracer() *Tracer {
	return &Tracer{}
}

func (t *Tracer) enter(parent int, via game.Move, state *game.GameState, depth int, maximizing bool) int {
	if t == nil {
		return rootParent
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes = append(t.nodes, traceNode{
		parent:     parent,
		via:        via,
		hash:       state.Hash(),
		depth:      depth,
		maximizing: maximizing,
	})
	return len(t.nodes) - 1
}

func (t *Tracer) leave(id int, score int, cutoff bool) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nodes[id].score = score
	t.nodes[id].cutoff = cutoff
}

// Len is the number of nodes recorded so far.
func (t *Tracer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes)
}

// DOT renders the recorded tree as a Graphviz digraph. Max nodes are boxes,
// min nodes ellipses; nodes where a cutoff happened are drawn red.
func (t *Tracer) DOT() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	graph := gographviz.NewGraph()
	if err := graph.SetName("search"); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}

	for id, n := range t.nodes {
		shape := "ellipse"
		if n.maximizing {
			shape = "box"
		}
		attrs := map[string]string{
			"shape": shape,
			"label": fmt.Sprintf("%q", fmt.Sprintf("d=%d score=%d %016x", n.depth, n.score, uint64(n.hash))),
		}
		if n.cutoff {
			attrs["color"] = "red"
		}
		if err := graph.AddNode("search", nodeName(id), attrs); err != nil {
			return "", err
		}
		if n.parent == rootParent {
			continue
		}
		edge := map[string]string{"label": fmt.Sprintf("%q", n.via.String())}
		if err := graph.AddEdge(nodeName(n.parent), nodeName(id), true, edge); err != nil {
			return "", err
		}
	}
	return graph.String(), nil
}

func nodeName(id int) string {
	return fmt.Sprintf("n%d", id)
}
