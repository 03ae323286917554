package category

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/catalog-admin/internal/domain/validation"
)

// Name length bounds, counted in characters after trimming.
const (
	NameMinLength = 3
	NameMaxLength = 255
)

// Validation messages reported for the name field.
const (
	MsgNameNull   = "'name' should not be null"
	MsgNameEmpty  = "'name' should not be empty"
	MsgNameLength = "'name' must be between 3 and 255 characters"
)

// Compile-time check that Category can be validated generically.
var _ validation.Validator = (*Category)(nil)

// Validate checks the category's rules and reports each failure to h.
// It returns the handler's terminal error, if any.
func (c *Category) Validate(h validation.Handler) error {
	return validator{category: c}.validate(h)
}

type validator struct {
	category *Category
}

func (v validator) validate(h validation.Handler) error {
	return v.checkName(h)
}

// checkName applies the name rules in order; at most one of them fires.
func (v validator) checkName(h validation.Handler) error {
	if v.category.name == nil {
		return h.Append(validation.NewError(MsgNameNull))
	}

	name := strings.TrimSpace(*v.category.name)
	if name == "" {
		return h.Append(validation.NewError(MsgNameEmpty))
	}

	length := utf8.RuneCountInString(name)
	if length < NameMinLength || length > NameMaxLength {
		return h.Append(validation.NewError(MsgNameLength))
	}

	return nil
}
