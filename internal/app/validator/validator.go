package validator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrder   = errors.New("invalid order form")
	ErrInvalidSignup  = errors.New("invalid signup form")
	ErrInvalidProfile = errors.New("invalid profile update")
)

// FieldErrors maps a form field name to the reason it was rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}

	return strings.Join(parts, "; ")
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if len(name) == 0 || name == "-" {
			return field.Name
		}

		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		value, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := value.Float64()
		return f
	}, decimal.Decimal{})

	return v
}

func ValidateCreateOrderForm(form entity.CreateOrderForm) error {
	return validateStruct(form, ErrInvalidOrder)
}

func ValidateSignupForm(form entity.SignupForm) error {
	return validateStruct(form, ErrInvalidSignup)
}

func ValidateProfilePatch(patch entity.ProfilePatch) error {
	return validateStruct(patch, ErrInvalidProfile)
}

// validateStruct reports every rejected field at once, wrapped into kind.
func validateStruct(form any, kind error) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error while validating form: %w", err)
	}

	fields := FieldErrors{}
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = messageForTag(fieldErr.Tag(), fieldErr.Param())
	}

	return fmt.Errorf("%w: %w", kind, fields)
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + param
	case "gte":
		return "must not be less than " + param
	default:
		return "is invalid"
	}
}
