package post

import "context"

// Repository defines data access for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns ErrPostNotFound if not exists.
	// Inside RunInTx the row stays locked until the transaction ends.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update overwrites all mutable fields and bumps updated_at
	// Returns ErrPostNotFound if not exists
	Update(ctx context.Context, post *Post) (*Post, error)

	Delete(ctx context.Context, id int64) error

	// RunInTx calls fn with a repository bound to a single transaction
	RunInTx(ctx context.Context, fn func(repo Repository) error) error
}
