// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "coffeeshop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags. Failures become ErrValidationFailed naming each field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; ")))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of [" + fe.Param() + "]"
	case "gt", "gte", "lt", "lte", "min", "max":
		return fe.Field() + " must be " + fe.Tag() + " " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email"
	}

	return fe.Field() + " failed " + fe.Tag()
}
