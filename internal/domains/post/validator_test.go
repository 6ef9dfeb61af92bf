package post_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/validator"
)

func strPtr(s string) *string { return &s }

func requireValidationError(t *testing.T, err error, field, message string) {
	t.Helper()
	ve, ok := validator.AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, message, ve.Message)
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"249 chars", strings.Repeat("a", 249), true},
		{"250 chars", strings.Repeat("a", 250), false},
		{"long", strings.Repeat("a", 5000), false},
		{"250 multibyte runes", strings.Repeat("é", 250), false},
		{"249 multibyte runes over 250 bytes", strings.Repeat("é", 249), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := post.ValidateContent(tt.content)
			if tt.wantErr {
				requireValidationError(t, err, post.FieldContent, post.MsgContentTooShort)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSummary(t *testing.T) {
	assert.NoError(t, post.ValidateSummary(nil))
	assert.NoError(t, post.ValidateSummary(strPtr("")))
	assert.NoError(t, post.ValidateSummary(strPtr(strings.Repeat("s", 250))))
	assert.NoError(t, post.ValidateSummary(strPtr(strings.Repeat("ü", 250))))

	err := post.ValidateSummary(strPtr(strings.Repeat("s", 251)))
	requireValidationError(t, err, post.FieldSummary, post.MsgSummaryTooLong)
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category *string
		wantErr  bool
	}{
		{"absent", nil, false},
		{"empty", strPtr(""), false},
		{"fiction", strPtr("Fiction"), false},
		{"non-fiction", strPtr("Non-Fiction"), false},
		{"lowercase", strPtr("fiction"), true},
		{"unknown", strPtr("Poetry"), true},
		{"padded", strPtr(" Fiction"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := post.ValidateCategory(tt.category)
			if tt.wantErr {
				requireValidationError(t, err, post.FieldCategory, post.MsgCategory)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTitle(t *testing.T) {
	valid := []string{
		"You Won't Believe This",
		"The Secret Garden",
		"Top 10 Secrets",
		"Guess Who",
		"Stop Guessing",
	}
	for _, title := range valid {
		assert.NoError(t, post.ValidateTitle(title), title)
	}

	invalid := []string{
		"",
		"Normal Headline",
		"top picks",
		"Desktop cleanup",
		"you wont believe",
	}
	for _, title := range invalid {
		requireValidationError(t, post.ValidateTitle(title), post.FieldTitle, post.MsgTitleMarker)
	}
}

func TestValidate(t *testing.T) {
	longContent := strings.Repeat("x", 300)

	t.Run("valid post", func(t *testing.T) {
		p := &post.Post{
			Title:    "Top 10 Secrets",
			Content:  longContent,
			Summary:  strPtr("short"),
			Category: strPtr(post.CategoryNonFiction),
		}
		assert.NoError(t, post.Validate(p))
	})

	t.Run("short content with a good title", func(t *testing.T) {
		p := &post.Post{Title: "Top 10 Secrets", Content: strings.Repeat("x", 249)}
		requireValidationError(t, post.Validate(p), post.FieldContent, post.MsgContentTooShort)
	})

	t.Run("long content with a plain title", func(t *testing.T) {
		p := &post.Post{Title: "Normal Headline", Content: longContent}
		requireValidationError(t, post.Validate(p), post.FieldTitle, post.MsgTitleMarker)
	})

	t.Run("title is reported first", func(t *testing.T) {
		p := &post.Post{Title: "Normal Headline", Category: strPtr("Poetry")}
		requireValidationError(t, post.Validate(p), post.FieldTitle, post.MsgTitleMarker)
	})

	t.Run("category checked last", func(t *testing.T) {
		p := &post.Post{Title: "Guess", Content: longContent, Category: strPtr("Poetry")}
		requireValidationError(t, post.Validate(p), post.FieldCategory, post.MsgCategory)
	})
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, post.ToHTTPStatus(post.ValidateTitle("")))
	assert.Equal(t, 404, post.ToHTTPStatus(post.ErrPostNotFound))
	assert.Equal(t, 500, post.ToHTTPStatus(errors.New("boom")))
	assert.Equal(t, "POST_NOT_FOUND", post.ToErrorCode(post.ErrPostNotFound))
}

func TestUpdatePostRequest_ApplyToEntity(t *testing.T) {
	p := &post.Post{ID: 2, Title: "Guess", Content: "body", Summary: strPtr("old")}

	req := &post.UpdatePostRequest{Category: strPtr(post.CategoryFiction)}
	req.ApplyToEntity(p)

	assert.Equal(t, "Guess", p.Title)
	assert.Equal(t, "old", *p.Summary)
	assert.Equal(t, post.CategoryFiction, *p.Category)
}

func TestPost_String(t *testing.T) {
	assert.Equal(t, "<Post Top 10 Secrets>", (&post.Post{Title: "Top 10 Secrets"}).String())
}
