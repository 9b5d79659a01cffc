package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeDecoding(t *testing.T) {
	t.Parallel()

	var n Node
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"parent_id":1,"child_ids":[6,7]}`), &n))
	assert.Equal(t, ID(5), n.ID)
	require.NotNil(t, n.ParentID)
	assert.Equal(t, ID(1), *n.ParentID)
	assert.Equal(t, []ID{6, 7}, n.ChildIDs)
	assert.False(t, n.IsRoot())

	var root Node
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"child_ids":[5]}`), &root))
	assert.True(t, root.IsRoot())
}

func TestUnknownNodeError(t *testing.T) {
	t.Parallel()

	err := &UnknownNodeError{ID: 42}
	assert.Equal(t, "unknown node id 42", err.Error())
}
