package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobim/famvault/internal/account"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Ready(context.Background()))
	return s
}

func testRecord(email string) *account.Record {
	return &account.Record{
		Name:      "Ada",
		Email:     email,
		PinSecret: "c2FsdA$aGFzaA",
		Profiles: []account.ProfileRecord{
			{ID: "p1", Name: "Kid", AvatarID: 7, IsChild: true},
		},
		ActiveProfileID: "p1",
	}
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	s := setupStore(t)

	r, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, testRecord("ada@x.io")))

	r, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Ada", r.Name)
	assert.Equal(t, "ada@x.io", r.Email)
	require.Len(t, r.Profiles, 1)
	assert.Equal(t, "p1", r.Profiles[0].ID)
	assert.Equal(t, "p1", r.ActiveProfileID)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, testRecord("ada@x.io")))
	require.NoError(t, s.Save(ctx, testRecord("bob@x.io")))

	r, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "bob@x.io", r.Email, "single slot: the newer record replaces the older")
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, testRecord("ada@x.io")))
	require.NoError(t, s.Clear(ctx))

	r, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)

	require.NoError(t, s.Clear(ctx), "clearing an empty store is a no-op")
}
