package author

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared/validator"
)

// PhoneDigits is the number of digits a phone number must contain
const PhoneDigits = 10

// NameLookup gives the validator read access to stored authors.
// Implementations must read live state; when called inside a write
// transaction the answer must come from that transaction.
type NameLookup interface {
	// ExistsByName reports whether an author other than excludeID has
	// exactly this name. excludeID == 0 checks every author.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}

// NormalizePhoneNumber keeps only decimal digits, in any script
func NormalizePhoneNumber(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// Validate runs every Author field validator in a fixed order and returns the
// first failure: name present, phone number format, name uniqueness.
func Validate(ctx context.Context, lookup NameLookup, a *Author) error {
	if err := ValidateFields(a); err != nil {
		return err
	}
	return ValidateNameUnique(ctx, lookup, a.Name, a.ID)
}

// ValidateFields runs the checks that need no store access
func ValidateFields(a *Author) error {
	if err := validateNamePresent(a.Name); err != nil {
		return err
	}
	return ValidatePhoneNumber(a.PhoneNumber)
}

// ValidateName checks that name is present and not used by any author other
// than selfID (0 for an author that is being created).
func ValidateName(ctx context.Context, lookup NameLookup, name string, selfID int64) error {
	if err := validateNamePresent(name); err != nil {
		return err
	}
	return ValidateNameUnique(ctx, lookup, name, selfID)
}

// ValidatePhoneNumber accepts a missing or empty phone number, otherwise the
// value must contain exactly PhoneDigits digits once formatting is removed.
func ValidatePhoneNumber(phone *string) error {
	if phone == nil {
		return nil
	}

	value := *phone
	return validator.Check(FieldPhoneNumber, value,
		validation.When(value != "", validation.By(tenDigits)),
	)
}

func validateNamePresent(name string) error {
	return validator.Check(FieldName, name, validation.Required.Error(MsgNameRequired))
}

// ValidateNameUnique fails when an author other than selfID already has name
func ValidateNameUnique(ctx context.Context, lookup NameLookup, name string, selfID int64) error {
	exists, err := lookup.ExistsByName(ctx, name, selfID)
	if err != nil {
		return fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		return ErrDuplicateName()
	}
	return nil
}

func tenDigits(value any) error {
	s, _ := value.(string)
	if utf8.RuneCountInString(NormalizePhoneNumber(s)) != PhoneDigits {
		return validation.NewError("validation_phone_digits", MsgPhoneDigits)
	}
	return nil
}
