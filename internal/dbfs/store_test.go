package dbfs_test

import (
	"context"
	"testing"

	"github.com/localnerve/waitinglist/internal/dbfs"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := dbfs.NewDBStore()

	id, err := store.Put(ctx, db, "/waitinglist/1", "1.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	content, err := store.Get(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), content)

	_, err = store.Get(ctx, db, id+100)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDBStoreDeletePathIsScoped(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := dbfs.NewDBStore()

	for _, f := range []struct{ path, name string }{
		{"/waitinglist/1", "a.jpg"},
		{"waitinglist/1/", "b.pdf"},
		{"/waitinglist/1/thumbs", "a.jpg"},
		{"/waitinglist/10", "c.jpg"},
		{"/animal/1", "d.jpg"},
	} {
		_, err := store.Put(ctx, db, f.path, f.name, []byte(f.name))
		require.NoError(t, err)
	}

	files, err := store.List(ctx, db, "/waitinglist/1")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	require.NoError(t, store.DeletePath(ctx, db, "/waitinglist/1"))

	files, err = store.List(ctx, db, "/waitinglist/1")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = store.List(ctx, db, "/waitinglist/10")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "c.jpg", files[0].Name)

	files, err = store.List(ctx, db, "/animal/1")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
