// Package validator plugs go-playground/validator into echo's Bind/Validate flow.
package validator

import (
	"reflect"
	"strings"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names by their json tag.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &EchoValidator{validate: v}
}

// Validate returns a VALIDATION_FAILED error listing every failed field.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]entity.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, entity.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Trường này là bắt buộc"
	case "email":
		return "Email không hợp lệ"
	case "oneof":
		return "Giá trị phải là một trong: " + fe.Param()
	case "min":
		return "Giá trị tối thiểu: " + fe.Param()
	case "max":
		return "Giá trị tối đa: " + fe.Param()
	default:
		return "Giá trị không hợp lệ"
	}
}
