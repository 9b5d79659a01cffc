// Package menu defines the domain types shared by every layer of menulint:
// the node record as fetched from the remote dataset and the errors raised
// when references inside the dataset do not resolve.
package menu

import "fmt"

// ID uniquely identifies a menu node within one fetched dataset.
type ID int64

// Node is a single element of the menu forest. A node without a parent
// reference is a root; ChildIDs may reference any other node in the dataset,
// including (in malformed data) the node itself or one of its ancestors.
type Node struct {
	ID       ID   `json:"id"`
	ParentID *ID  `json:"parent_id,omitempty"`
	ChildIDs []ID `json:"child_ids"`
}

// IsRoot reports whether the node has no parent reference.
func (n Node) IsRoot() bool {
	return n.ParentID == nil
}

// UnknownNodeError reports a child or parent reference to an id that is
// absent from the node store. It signals malformed upstream data; callers
// must fail the affected branch rather than treat the reference as a leaf,
// since silently dropping it would understate both the reachable set and
// the depth.
type UnknownNodeError struct {
	ID ID
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node id %d", int64(e.ID))
}
