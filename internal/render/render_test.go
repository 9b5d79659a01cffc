package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/menulint/internal/classify"
	"github.com/vk/menulint/internal/menu"
)

func TestJSON_Shape(t *testing.T) {
	t.Parallel()

	res := &classify.Result{
		Valid: []classify.Branch{
			{RootID: 1, Children: []menu.ID{2, 3}},
		},
		Invalid: []classify.Branch{
			{RootID: 5, Children: []menu.ID{5}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res, false))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Contains(t, decoded, "valid_menus")
	assert.Contains(t, decoded, "invalid_menus")
	assert.NotContains(t, decoded, "orphans")
	assert.JSONEq(t,
		`{"valid_menus":[{"root_id":1,"children":[2,3]}],"invalid_menus":[{"root_id":5,"children":[5]}]}`,
		buf.String())
}

func TestJSON_EmptyResultKeepsArrays(t *testing.T) {
	t.Parallel()

	res := &classify.Result{Valid: []classify.Branch{}, Invalid: []classify.Branch{}}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res, false))

	// Empty collections serialize as [] rather than null.
	assert.JSONEq(t, `{"valid_menus":[],"invalid_menus":[]}`, buf.String())
}

func TestJSON_Orphans(t *testing.T) {
	t.Parallel()

	res := &classify.Result{
		Valid:   []classify.Branch{},
		Invalid: []classify.Branch{},
		Orphans: []menu.ID{7, 9},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res, false))
	assert.JSONEq(t, `{"valid_menus":[],"invalid_menus":[],"orphans":[7,9]}`, buf.String())
}

func TestJSON_Pretty(t *testing.T) {
	t.Parallel()

	res := &classify.Result{
		Valid:   []classify.Branch{{RootID: 1, Children: []menu.ID{}}},
		Invalid: []classify.Branch{},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res, true))
	assert.Contains(t, buf.String(), "\n  \"valid_menus\"")
}
