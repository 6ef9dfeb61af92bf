package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// postgresRepository implements post.Repository
type postgresRepository struct {
	pool  *pgxpool.Pool
	db    database.Querier
	cache cache.Cache
	tx    *txState
}

type txState struct {
	staleKeys []string
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		db:    pool,
		cache: cache,
	}
}

const (
	postCacheKeyPrefix = "post:"
	cacheTTL           = 15 * time.Minute
)

const postColumns = `id, title, content, summary, category, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO posts (title, content, summary, category)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + postColumns

	created, err := scanPost(r.db.QueryRow(ctx, query, p.Title, p.Content, p.Summary, p.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	key := cacheKey(id)

	if r.tx == nil && r.cache != nil {
		var p post.Post
		cached, err := r.cache.Get(ctx, key, &p)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("post cache read failed")
		}
		if err == nil && cached {
			return &p, nil
		}
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	if r.tx != nil {
		query += ` FOR UPDATE`
	}

	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if r.tx == nil && r.cache != nil {
		if err := r.cache.Set(ctx, key, p, cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("post cache write failed")
		}
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        UPDATE posts
        SET
            title = $1,
            content = $2,
            summary = $3,
            category = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING ` + postColumns

	updated, err := scanPost(r.db.QueryRow(ctx, query, p.Title, p.Content, p.Summary, p.Category, p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.invalidate(ctx, p.ID)

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresRepository) RunInTx(ctx context.Context, fn func(repo post.Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}

	state := &txState{}
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&postgresRepository{
			pool:  r.pool,
			db:    tx,
			cache: r.cache,
			tx:    state,
		})
	})
	if err != nil {
		return err
	}

	if r.cache != nil && len(state.staleKeys) > 0 {
		if err := r.cache.Delete(ctx, state.staleKeys...); err != nil {
			log.Warn().Err(err).Strs("keys", state.staleKeys).Msg("post cache invalidation failed")
		}
	}

	return nil
}

func cacheKey(id int64) string {
	return postCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	if r.tx != nil {
		r.tx.staleKeys = append(r.tx.staleKeys, cacheKey(id))
		return
	}
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("post_id", id).Msg("post cache invalidation failed")
	}
}

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Summary,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
