package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"tala-trivia/internal/domain"

	"github.com/go-playground/validator/v10"
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator wraps go-playground validator with the trivia rules and reports
// failures as domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseDifficulty(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		return IsValidULID(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks s against its `validate` tags.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("request validation failed", err)
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath drops the top-level struct name: "CreateQuestionRequest.options[0].option_text"
// becomes "options[0].option_text".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "role":
		return "must be one of: player, admin"
	case "difficulty":
		return "must be one of: easy, medium, hard"
	case "ulid":
		return "must be a valid ULID"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// IsValidULID checks if the string is in canonical ULID form.
func IsValidULID(s string) bool {
	return ulidPattern.MatchString(s)
}
