package categories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/server/migrations"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/sqlitex"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, int64) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlitex.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	require.NoError(t, err)
	_, err = p.Up(ctx)
	require.NoError(t, err)

	res, err := db.ExecContext(ctx, `INSERT INTO users (username, email, password_hash) VALUES ('alice', 'a@b.co', x'00')`)
	require.NoError(t, err)
	uid, err := res.LastInsertId()
	require.NoError(t, err)
	return db, uid
}

func TestSQLiteRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db, uid := openTestDB(t)
	r := NewSQLiteRepository(db)

	names, err := r.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, r.Create(ctx, uid, "Food & Dining"))
	require.NoError(t, r.Create(ctx, uid, "Travel"))
	assert.ErrorIs(t, r.Create(ctx, uid, "Travel"), common.ErrAlreadyExists)

	names, err = r.List(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food & Dining", "Travel"}, names)

	require.NoError(t, r.Rename(ctx, uid, "Travel", "Trips"))
	assert.ErrorIs(t, r.Rename(ctx, uid, "Travel", "Trips"), common.ErrNotFound)
	assert.ErrorIs(t, r.Rename(ctx, uid, "Trips", "Food & Dining"), common.ErrAlreadyExists)

	ok, err := r.Exists(ctx, uid, "Trips")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.Delete(ctx, uid, "Trips"))
	assert.ErrorIs(t, r.Delete(ctx, uid, "Trips"), common.ErrNotFound)

	ok, err = r.Exists(ctx, uid, "Trips")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRepository_PerUser(t *testing.T) {
	ctx := context.Background()
	db, uid := openTestDB(t)
	r := NewSQLiteRepository(db)

	res, err := db.ExecContext(ctx, `INSERT INTO users (username, email, password_hash) VALUES ('bob', 'b@b.co', x'00')`)
	require.NoError(t, err)
	bob, err := res.LastInsertId()
	require.NoError(t, err)

	require.NoError(t, r.Create(ctx, uid, "Travel"))
	require.NoError(t, r.Create(ctx, bob, "Travel"))

	names, err := r.List(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel"}, names)
}
