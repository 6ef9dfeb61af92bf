package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/database"
)

// postgresRepository implements author.Repository interface
// Uses pgxpool for PostgreSQL and Redis for caching
type postgresRepository struct {
	pool  *pgxpool.Pool    // PostgreSQL connection pool
	db    database.Querier // pool, or the transaction when inside RunInTx
	cache cache.Cache      // optional read-through cache
	tx    *txState         // non-nil inside RunInTx
}

// txState collects cache keys to drop once the transaction has committed
type txState struct {
	staleKeys []string
}

// NewPostgresRepository creates a new author repository instance
// Dependency injection pattern - receives pool and cache from container
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		db:    pool,
		cache: cache,
	}
}

// Cache key constants
const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute

	nameUniqueConstraint = "authors_name_key"
	uniqueViolation      = "23505"
)

const authorColumns = `id, name, phone_number, created_at, updated_at`

// ExistsByName checks whether another author already uses name
func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check name existence: %w", err)
	}

	return exists, nil
}

// LockName takes a transaction-scoped advisory lock keyed on name so two
// writers of the same name cannot both pass the uniqueness check
func (r *postgresRepository) LockName(ctx context.Context, name string) error {
	if r.tx == nil {
		return nil
	}

	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, name); err != nil {
		return fmt.Errorf("failed to lock author name: %w", err)
	}
	return nil
}

// Create inserts new author with generated ID and timestamps
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, phone_number)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.db.QueryRow(ctx, query, a.Name, a.PhoneNumber))
	if err != nil {
		if isNameConflict(err) {
			return nil, author.ErrDuplicateName()
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

// GetByID retrieves author by ID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	key := cacheKey(id)

	// Inside a transaction always read the transaction's view
	if r.tx == nil && r.cache != nil {
		var a author.Author
		cached, err := r.cache.Get(ctx, key, &a)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("author cache read failed")
		}
		if err == nil && cached {
			return &a, nil
		}
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`
	if r.tx != nil {
		query += ` FOR UPDATE`
	}

	a, err := scanAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if r.tx == nil && r.cache != nil {
		if err := r.cache.Set(ctx, key, a, cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("author cache write failed")
		}
	}

	return a, nil
}

// Update overwrites all mutable columns and bumps updated_at
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET
            name = $1,
            phone_number = $2,
            updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.db.QueryRow(ctx, query, a.Name, a.PhoneNumber, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		if isNameConflict(err) {
			return nil, author.ErrDuplicateName()
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx, a.ID)

	return updated, nil
}

// Delete removes author by ID
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

// RunInTx runs fn against a repository bound to one transaction.
// Nested calls reuse the outer transaction.
func (r *postgresRepository) RunInTx(ctx context.Context, fn func(repo author.Repository) error) error {
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

	// Committed: now it is safe to drop cached copies
	if r.cache != nil && len(state.staleKeys) > 0 {
		if err := r.cache.Delete(ctx, state.staleKeys...); err != nil {
			log.Warn().Err(err).Strs("keys", state.staleKeys).Msg("author cache invalidation failed")
		}
	}

	return nil
}

// Cache helper methods

func cacheKey(id int64) string {
	return authorCacheKeyPrefix + strconv.FormatInt(id, 10)
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
		log.Warn().Err(err).Int64("author_id", id).Msg("author cache invalidation failed")
	}
}

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.PhoneNumber,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// isNameConflict detects the UNIQUE(name) backstop firing
func isNameConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == nameUniqueConstraint
}
