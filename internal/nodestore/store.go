// Package nodestore provides the immutable, in-memory index of menu nodes
// for one classification run.
//
// The store is built once from the full flat list returned by the fetch
// layer and is read-only afterwards. It holds the static structure of the
// forest only; it knows nothing about reachability or validity, which are
// computed by the classify package on top of it.
package nodestore

import (
	"context"
	"sort"

	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/menu"
)

// Store is an id-keyed index over the fetched menu nodes. Once New returns,
// the store is never mutated, so it is safe for concurrent readers without
// locking.
type Store struct {
	nodes map[menu.ID]menu.Node
}

// New builds a store from the flat node list. Identities are expected to be
// unique in the source data; a duplicate id is last-write-wins and logged as
// a data-quality warning rather than silently accepted.
func New(ctx context.Context, nodes []menu.Node) *Store {
	logger := ctxlog.FromContext(ctx)

	s := &Store{nodes: make(map[menu.ID]menu.Node, len(nodes))}
	for _, n := range nodes {
		if _, dup := s.nodes[n.ID]; dup {
			logger.Warn("Duplicate node id in source data, keeping last occurrence.", "id", int64(n.ID))
		}
		s.nodes[n.ID] = n
	}
	return s
}

// Resolve returns the node for the given id. A missing id yields a
// *menu.UnknownNodeError: references into the void are malformed input, not
// leaves.
func (s *Store) Resolve(id menu.ID) (menu.Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return menu.Node{}, &menu.UnknownNodeError{ID: id}
	}
	return n, nil
}

// Roots returns every node without a parent reference, sorted by id for
// deterministic iteration. A node whose parent id does not resolve is not a
// root; it belongs to an orphaned subgraph (see classify.Options).
func (s *Store) Roots() []menu.Node {
	var roots []menu.Node
	for _, n := range s.nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })
	return roots
}

// All returns a snapshot of every node in the store, sorted by id.
func (s *Store) All() []menu.Node {
	all := make([]menu.Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	return len(s.nodes)
}
