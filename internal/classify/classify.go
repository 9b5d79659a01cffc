package classify

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/menu"
	"github.com/vk/menulint/internal/nodestore"
)

// DefaultMaxDepth is the deepest branch the challenge dataset considers
// well-formed: five nodes on the longest path, four edges.
const DefaultMaxDepth = 4

// Options control one classification run.
type Options struct {
	// MaxDepth is the inclusive depth limit for the depth rule. Zero or
	// negative means DefaultMaxDepth.
	MaxDepth int
	// ReportOrphans requests that nodes which are neither roots nor
	// reachable from any root be collected into Result.Orphans.
	ReportOrphans bool
}

// Branch is the outcome of processing one root: the root's id and every id
// reachable from it through child references. Children is sorted ascending
// so branch records are deterministic across runs.
type Branch struct {
	RootID   menu.ID   `json:"root_id"`
	Children []menu.ID `json:"children"`
}

// Result partitions all discovered branches. Valid and Invalid are always
// non-nil; Orphans is populated only when Options.ReportOrphans is set.
type Result struct {
	Valid   []Branch
	Invalid []Branch
	Orphans []menu.ID
}

// Classifier evaluates branches against a read-only node store.
type Classifier struct {
	store *nodestore.Store
	opts  Options
}

// New creates a classifier over the given store.
func New(store *nodestore.Store, opts Options) *Classifier {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Classifier{store: store, opts: opts}
}

// Classify processes every root in the store and partitions the resulting
// branches. A dataset with zero roots yields empty collections, not an
// error. A dangling child reference fails the whole run with a wrapped
// *menu.UnknownNodeError naming the affected root.
func (c *Classifier) Classify(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	res := &Result{Valid: []Branch{}, Invalid: []Branch{}}

	var reached map[menu.ID]struct{}
	if c.opts.ReportOrphans {
		reached = make(map[menu.ID]struct{})
	}

	for _, root := range c.store.Roots() {
		reachable, err := c.reachable(root)
		if err != nil {
			return nil, fmt.Errorf("branch for root %d: %w", int64(root.ID), err)
		}
		depth, err := c.maxDepth(root)
		if err != nil {
			return nil, fmt.Errorf("branch for root %d: %w", int64(root.ID), err)
		}

		_, cyclic := reachable[root.ID]
		branch := Branch{RootID: root.ID, Children: sortedIDs(reachable)}

		if reached != nil {
			reached[root.ID] = struct{}{}
			for id := range reachable {
				reached[id] = struct{}{}
			}
		}

		if depth <= c.opts.MaxDepth && !cyclic {
			res.Valid = append(res.Valid, branch)
		} else {
			logger.Debug("Branch failed validation.",
				"root_id", int64(root.ID), "depth", depth, "cyclic", cyclic)
			res.Invalid = append(res.Invalid, branch)
		}
	}

	if reached != nil {
		for _, n := range c.store.All() {
			if _, ok := reached[n.ID]; !ok {
				res.Orphans = append(res.Orphans, n.ID)
			}
		}
	}

	return res, nil
}

// reachable computes the set of ids reachable from the root's direct
// children. The traversal is depth-first with an explicit stack; each id is
// expanded at most once, so it terminates in O(nodes + edges) even when the
// graph loops back on itself. The root's id appears in the returned set iff
// some path of child references leads back to it.
func (c *Classifier) reachable(root menu.Node) (map[menu.ID]struct{}, error) {
	visited := make(map[menu.ID]struct{})
	stack := append([]menu.ID(nil), root.ChildIDs...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		n, err := c.store.Resolve(id)
		if err != nil {
			return nil, err
		}
		for _, child := range n.ChildIDs {
			if _, seen := visited[child]; !seen {
				stack = append(stack, child)
			}
		}
	}

	return visited, nil
}

// frame is one entry of the explicit depth traversal stack. A node is
// pushed twice: once to expand its children and once, after they are done,
// to fold their memoized depths into its own.
type frame struct {
	id       menu.ID
	expanded bool
}

// maxDepth computes the length in edges of the longest path from the root.
// The traversal is an iterative post-order with an explicit frame stack, so
// a chain longer than the call-depth limit cannot blow the stack, and each
// subtree's depth is memoized by node id so shared (diamond) subgraphs are
// computed once and reused with their true depth-from-that-node value.
//
// A child list that directly contains the root's id pins that node's depth
// contribution to exactly 1: the edge closes a cycle back to the root, and
// invalidation is the cycle rule's job, not the depth's. An edge to a node
// still being expanded (a cycle between descendants) is skipped, since no
// simple path continues through it.
func (c *Classifier) maxDepth(root menu.Node) (int, error) {
	memo := make(map[menu.ID]int)
	open := make(map[menu.ID]struct{})
	stack := []frame{{id: root.ID}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := c.store.Resolve(f.id)
		if err != nil {
			return 0, err
		}

		if !f.expanded {
			if _, done := memo[f.id]; done {
				continue
			}
			if _, o := open[f.id]; o {
				continue
			}
			open[f.id] = struct{}{}
			stack = append(stack, frame{id: f.id, expanded: true})

			if containsID(n.ChildIDs, root.ID) {
				// Depth is pinned to 1 below; children are irrelevant.
				continue
			}
			for _, child := range n.ChildIDs {
				if _, done := memo[child]; done {
					continue
				}
				if _, o := open[child]; o {
					continue
				}
				stack = append(stack, frame{id: child})
			}
			continue
		}

		delete(open, f.id)
		switch {
		case len(n.ChildIDs) == 0:
			memo[f.id] = 0
		case containsID(n.ChildIDs, root.ID):
			memo[f.id] = 1
		default:
			deepest := -1
			for _, child := range n.ChildIDs {
				if d, ok := memo[child]; ok && d > deepest {
					deepest = d
				}
			}
			if deepest < 0 {
				// Every child edge closed a descendant-level cycle; no
				// simple path extends beyond this node.
				memo[f.id] = 0
			} else {
				memo[f.id] = deepest + 1
			}
		}
	}

	return memo[root.ID], nil
}

func containsID(ids []menu.ID, id menu.ID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func sortedIDs(set map[menu.ID]struct{}) []menu.ID {
	ids := make([]menu.ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
