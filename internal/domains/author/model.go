package author

import (
	"fmt"
	"time"
)

// Author represents the core Author entity
// This is the domain model, independent of database/API concerns
type Author struct {
	// Identity - generated by the store (BIGSERIAL)
	ID int64 `json:"id" db:"id"`

	// Required, unique across all authors (case-sensitive)
	Name string `json:"name" db:"name"`

	// Optional, any formatting as long as 10 digits remain
	PhoneNumber *string `json:"phone_number" db:"phone_number"`

	// Audit timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (a *Author) String() string {
	return fmt.Sprintf("<Author %s>", a.Name)
}
