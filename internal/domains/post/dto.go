package post

import "time"

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category,omitempty"`
}

// UpdatePostRequest - PUT /v1/posts/:id
// All fields optional for partial updates
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category,omitempty"`
}

type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   *string   `json:"summary,omitempty"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (req *CreatePostRequest) ToEntity() *Post {
	return &Post{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
	}
}

// ApplyToEntity copies every non-nil field onto p
func (req *UpdatePostRequest) ApplyToEntity(p *Post) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Summary != nil {
		p.Summary = req.Summary
	}
	if req.Category != nil {
		p.Category = req.Category
	}
}
