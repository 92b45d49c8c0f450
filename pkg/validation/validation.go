package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperrors "blooddonor/pkg/errors"
)

const requiredMessage = "All fields are required"

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the notblank rule registered and
// field names reported by their json tag.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
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

// Struct validates v and converts failures to a VALIDATION AppError that lists
// every offending field.
func Struct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.BadRequest("Invalid input data", err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}

	appErr := apperrors.Validation(requiredMessage+": "+strings.Join(fields, ", "), fields...)
	appErr.Err = err
	return appErr
}
