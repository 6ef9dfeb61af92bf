package author

import "time"

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// All fields optional for partial updates (PATCH behavior)
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToEntity converts CreateAuthorRequest to Author entity
func (req *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity
func (req *UpdateAuthorRequest) ApplyToEntity(author *Author) {
	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		author.PhoneNumber = req.PhoneNumber
	}
}
