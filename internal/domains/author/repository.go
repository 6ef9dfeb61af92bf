package author

import "context"

// Repository defines the interface for Author data access operations
// This abstraction allows:
// 1. Easy testing via mocking
// 2. Swapping database implementations
// 3. Running validation and write inside one transaction (RunInTx)
type Repository interface {
	NameLookup

	// LockName serializes concurrent writers of the same name until the
	// surrounding transaction ends. No-op outside a transaction.
	LockName(ctx context.Context, name string) error

	// Create inserts a new author
	// Returns: created author with ID and timestamps
	// Errors: ValidationError "Name must be unique." on unique violation
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by ID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Update persists all fields of an existing author and bumps updated_at
	// Errors: ErrAuthorNotFound, ValidationError on unique violation
	Update(ctx context.Context, author *Author) (*Author, error)

	// Delete removes author by ID
	// Returns: ErrAuthorNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// RunInTx calls fn with a repository bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(repo Repository) error) error
}
