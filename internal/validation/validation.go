package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

// Normalizer is implemented by request types that clean up their fields
// (trimming, defaults) before validation.
type Normalizer interface {
	Normalize()
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate normalizes v when it implements Normalizer and checks its
// `validate` struct tags. The first violation is returned as an AppError
// naming the offending field.
func Validate(v interface{}) error {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}

	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.MissingFieldError(fe.Field()).
				WithDetail("reason", "field is required and must not be empty")
		}
		return apperrors.ValidationError(fe.Field(), reason(fe))
	}

	return apperrors.Wrap(err, apperrors.ErrCodeValidation, "request validation failed")
}

// TrimmedString trims surrounding whitespace and reports whether anything is left
func TrimmedString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func reason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed the '%s' check", fe.Tag())
	}
}
