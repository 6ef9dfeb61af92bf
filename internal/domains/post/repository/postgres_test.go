package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeDB struct {
	queryRow func(sql string, args ...any) pgx.Row
	exec     func(sql string, args ...any) (pgconn.CommandTag, error)
	queries  []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	return f.exec(sql, args...)
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	return f.queryRow(sql, args...)
}

type memCache struct {
	items   map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{items: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.items, k)
	}
	m.deleted = append(m.deleted, keys...)
	return nil
}

func (m *memCache) Ping(context.Context) error { return nil }

func postRow(id int64, title string) pgx.Row {
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*int64) = id
		*dest[1].(*string) = title
		*dest[2].(*string) = strings.Repeat("x", 250)
		return nil
	}}
}

func TestGetByID_Cached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	db := &fakeDB{queryRow: func(string, ...any) pgx.Row {
		calls++
		return postRow(4, "Top 10 Secrets")
	}}
	c := newMemCache()
	repo := &postgresRepository{db: db, cache: c}

	for i := 0; i < 3; i++ {
		p, err := repo.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Top 10 Secrets", p.Title)
	}
	assert.Equal(t, 1, calls)
	assert.Contains(t, c.items, "post:4")
}

func TestGetByID_LocksRowInsideTx(t *testing.T) {
	db := &fakeDB{queryRow: func(string, ...any) pgx.Row { return postRow(4, "Guess") }}
	repo := &postgresRepository{db: db, tx: &txState{}}

	_, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, db.queries, 1)
	assert.True(t, strings.HasSuffix(db.queries[0], "FOR UPDATE"))
}

func TestGetByID_NotFound(t *testing.T) {
	db := &fakeDB{queryRow: func(string, ...any) pgx.Row {
		return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
	}}
	repo := &postgresRepository{db: db}

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates cache", func(t *testing.T) {
		db := &fakeDB{queryRow: func(string, ...any) pgx.Row { return postRow(4, "Secret") }}
		c := newMemCache()
		repo := &postgresRepository{db: db, cache: c}

		updated, err := repo.Update(ctx, &post.Post{ID: 4, Title: "Secret"})
		require.NoError(t, err)
		assert.Equal(t, "Secret", updated.Title)
		assert.Equal(t, []string{"post:4"}, c.deleted)
	})

	t.Run("deferred inside tx", func(t *testing.T) {
		db := &fakeDB{queryRow: func(string, ...any) pgx.Row { return postRow(4, "Secret") }}
		c := newMemCache()
		state := &txState{}
		repo := &postgresRepository{db: db, cache: c, tx: state}

		_, err := repo.Update(ctx, &post.Post{ID: 4, Title: "Secret"})
		require.NoError(t, err)
		assert.Empty(t, c.deleted)
		assert.Equal(t, []string{"post:4"}, state.staleKeys)
	})
}

func TestDelete_NotFound(t *testing.T) {
	db := &fakeDB{exec: func(string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}}
	repo := &postgresRepository{db: db}

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), post.ErrPostNotFound)
}
