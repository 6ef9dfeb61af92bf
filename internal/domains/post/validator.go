package post

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/validator"
)

// Length limits, counted in characters (runes), not bytes
const (
	MinContentLength = 250
	MaxSummaryLength = 250
)

// Allowed categories
const (
	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"
)

// TitleMarkers are the phrases of which a title must contain at least one.
// Matching is a case-sensitive substring match.
var TitleMarkers = []string{"Won't Believe", "Secret", "Top", "Guess"}

// Validate runs every Post field validator and returns the first failure,
// checked in the order title, content, summary, category
func Validate(p *Post) error {
	if err := ValidateTitle(p.Title); err != nil {
		return err
	}
	if err := ValidateContent(p.Content); err != nil {
		return err
	}
	if err := ValidateSummary(p.Summary); err != nil {
		return err
	}
	return ValidateCategory(p.Category)
}

func ValidateTitle(title string) error {
	return validator.Check(FieldTitle, title, validation.By(hasTitleMarker))
}

func ValidateContent(content string) error {
	return validator.Check(FieldContent, content,
		validation.Required.Error(MsgContentTooShort),
		validation.RuneLength(MinContentLength, 0).Error(MsgContentTooShort),
	)
}

// ValidateSummary accepts a missing or empty summary
func ValidateSummary(summary *string) error {
	if summary == nil {
		return nil
	}
	return validator.Check(FieldSummary, *summary,
		validation.RuneLength(0, MaxSummaryLength).Error(MsgSummaryTooLong),
	)
}

// ValidateCategory accepts a missing or empty category
func ValidateCategory(category *string) error {
	if category == nil {
		return nil
	}
	return validator.Check(FieldCategory, *category,
		validation.In(CategoryFiction, CategoryNonFiction).Error(MsgCategory),
	)
}

func hasTitleMarker(value any) error {
	title, _ := value.(string)
	for _, marker := range TitleMarkers {
		if strings.Contains(title, marker) {
			return nil
		}
	}
	return validation.NewError("validation_title_marker", MsgTitleMarker)
}
