// Package classify reconstructs each root's branch of the menu forest and
// partitions the branches into valid and invalid collections.
//
// # What a branch is
//
// A branch is one root node together with everything reachable from it by
// following child references. Two independent structural rules decide
// validity:
//
//   - Cycle rule: no path of child references may lead back to the root
//     itself. Equivalently, the root's own id must not appear in its
//     reachable set.
//   - Depth rule: the longest path from the root must not exceed the
//     configured maximum (4 by default). A branch consisting of only the
//     root has depth 0; every edge traversed adds 1.
//
// The two rules are evaluated independently; a branch can fail on either or
// both.
//
// # Pathological shapes
//
// The input graph is untrusted and may contain cycles (including a root
// listing itself as a child), diamonds (two paths converging on one
// descendant), and references to ids that do not exist at all.
//
// Both traversals are iterative with explicit stacks, so a chain longer
// than the call-depth limit cannot crash the process, and every node is
// expanded at most once per traversal, so cycles cannot cause
// non-termination. Diamond descendants are counted once in the reachable
// set, and their subtree depth is memoized by node id so the deepest path
// through them is reflected regardless of which parent reaches them first.
//
// A reference to an unknown id fails the affected branch's computation with
// a *menu.UnknownNodeError instead of silently treating the reference as a
// leaf; dropping it could mask a would-be-invalid branch as valid.
//
// # Concurrency
//
// The classifier itself is single-threaded. Each root's traversal uses only
// its own local state on top of the read-only store, so callers could run
// per-root classifications in parallel without coordination if they ever
// needed to.
package classify
