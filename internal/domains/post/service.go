package post

import "context"

// Service defines business logic operations for Post domain
type Service interface {
	// Create validates and stores a new post
	// Errors: ValidationError
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)

	// GetByID errors: ErrPostNotFound, ErrInvalidID
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update applies a partial update and re-validates the merged post
	// Errors: ErrPostNotFound, ValidationError
	Update(ctx context.Context, id int64, req *UpdatePostRequest) (*Post, error)

	Delete(ctx context.Context, id int64) error
}
