// Package render serializes a classification result for the presentation
// layer. The core mandates no wire format; this package owns the JSON shape
// expected by the challenge ({"valid_menus": ..., "invalid_menus": ...}).
package render

import (
	"encoding/json"
	"io"

	"github.com/vk/menulint/internal/classify"
	"github.com/vk/menulint/internal/menu"
)

// output is the serialized result shape. Depth values are internal to the
// classification and never serialized.
type output struct {
	ValidMenus   []classify.Branch `json:"valid_menus"`
	InvalidMenus []classify.Branch `json:"invalid_menus"`
	Orphans      []menu.ID         `json:"orphans,omitempty"`
}

// JSON writes the classification result to w. Branch and child ordering is
// already deterministic (sorted by id) by the time the result reaches this
// package, so encoding is stable across runs.
func JSON(w io.Writer, res *classify.Result, pretty bool) error {
	out := output{
		ValidMenus:   res.Valid,
		InvalidMenus: res.Invalid,
		Orphans:      res.Orphans,
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
