package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/guttosm/hogpulse/internal/domain/errs"
)

// validate is the shared, goroutine-safe struct validator.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names (or lowerCamel Go names when untagged).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return lowerFirst(f.Name)
	})
	return v
}

// ValidateStruct runs the `validate` tags of s and converts failures into a ValidationError.
func ValidateStruct(s any) error {
	return collect(s, &errs.ValidationError{}).OrNil()
}

// collect appends the tag failures of s to into.
func collect(s any, into *errs.ValidationError) *errs.ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return into
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		into.Add("body", err.Error())
		return into
	}
	for _, fe := range verrs {
		into.Add(fe.Field(), describe(fe))
	}
	return into
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
