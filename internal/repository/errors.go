package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownCollection is returned for a collection name the service does not serve.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug is returned when two items of a collection share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// ValidationError reports the fields of a document that failed validation.
type ValidationError struct {
	Source string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Source, strings.Join(e.Fields, "; "))
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// newValidator returns a validator with the content specific rules registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateDocument runs v over doc and converts failures into a *ValidationError.
func validateDocument(v *validator.Validate, source string, doc any) error {
	err := v.Struct(doc)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s: %w", source, err)
	}
	verr := &ValidationError{Source: source}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
