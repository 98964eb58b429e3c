package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "nested", "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	clock := time.Unix(1700000000, 0)
	lib.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return lib
}

func house() *layers.State {
	s := layers.New(16, 16)
	s.Set(0, 0, 0, "minecraft:oak_planks")
	s.Set(1, 0, 0, "minecraft:oak_planks")
	s.Set(1, 1, 0, "minecraft:glass")
	return s
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	lib := openTemp(t)
	id, err := lib.Save(ctx, "house", house())
	require.NoError(t, err)

	entry, state, err := lib.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "house", entry.Name)
	assert.Equal(t, 3, entry.Blocks)
	assert.Equal(t, 16, entry.SizeX)
	assert.Equal(t, house().Layers, state.Layers)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	lib := openTemp(t)
	a, err := lib.Save(ctx, "a", house())
	require.NoError(t, err)
	b, err := lib.Save(ctx, "b", layers.New(8, 8))
	require.NoError(t, err)

	entries, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, b, entries[0].ID)
	assert.Equal(t, a, entries[1].ID)

	require.NoError(t, lib.Update(ctx, a, "a2", house()))
	entries, err = lib.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, entries[0].ID)
	assert.Equal(t, "a2", entries[0].Name)
	assert.True(t, entries[0].UpdatedAt.After(entries[0].CreatedAt))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	lib := openTemp(t)
	id, err := lib.Save(ctx, "gone", house())
	require.NoError(t, err)
	require.NoError(t, lib.Delete(ctx, id))

	_, _, err = lib.Load(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(lib.Delete(ctx, id), ErrNotFound))
	assert.True(t, errors.Is(lib.Update(ctx, uuid.New(), "x", house()), ErrNotFound))
}
