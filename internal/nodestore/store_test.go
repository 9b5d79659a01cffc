package nodestore

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/menu"
)

func pid(id menu.ID) *menu.ID {
	return &id
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(ctx, []menu.Node{
		{ID: 1, ChildIDs: []menu.ID{2}},
		{ID: 2, ParentID: pid(1)},
	})

	t.Run("known id", func(t *testing.T) {
		t.Parallel()
		n, err := s.Resolve(2)
		require.NoError(t, err)
		assert.Equal(t, menu.ID(2), n.ID)
		require.NotNil(t, n.ParentID)
		assert.Equal(t, menu.ID(1), *n.ParentID)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, err := s.Resolve(99)
		require.Error(t, err)

		var unknown *menu.UnknownNodeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, menu.ID(99), unknown.ID)
	})
}

func TestRoots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(ctx, []menu.Node{
		{ID: 3},
		{ID: 1},
		{ID: 2, ParentID: pid(1)},
		// A dangling parent reference does not promote a node to root.
		{ID: 4, ParentID: pid(42)},
	})

	roots := s.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, menu.ID(1), roots[0].ID)
	assert.Equal(t, menu.ID(3), roots[1].ID)
}

func TestDuplicateIDLastWriteWins(t *testing.T) {
	t.Parallel()

	logBuf := &strings.Builder{}
	logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	s := New(ctx, []menu.Node{
		{ID: 1, ChildIDs: []menu.ID{2}},
		{ID: 1, ChildIDs: []menu.ID{3}},
	})

	require.Equal(t, 1, s.Len())
	n, err := s.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, []menu.ID{3}, n.ChildIDs)
	assert.Contains(t, logBuf.String(), "Duplicate node id")
}

func TestAllIsSortedSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(ctx, []menu.Node{{ID: 5}, {ID: 1}, {ID: 3}})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, menu.ID(1), all[0].ID)
	assert.Equal(t, menu.ID(3), all[1].ID)
	assert.Equal(t, menu.ID(5), all[2].ID)
}

func TestEmptyStore(t *testing.T) {
	t.Parallel()

	s := New(context.Background(), nil)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Roots())
	assert.Empty(t, s.All())
}
