package author

import "context"

// Service defines business logic operations for Author domain
type Service interface {
	// Create validates and stores a new author
	// Business rules:
	// - Name required and unique across all authors
	// - Phone number optional, exactly 10 digits once formatting is stripped
	// Errors: ValidationError
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by ID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Update applies a partial update and re-validates the result
	// Errors: ErrAuthorNotFound, ValidationError
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes author
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id int64) error
}
