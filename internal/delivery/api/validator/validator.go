// Package validator plugs go-playground/validator into echo.
package validator

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/util"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New returns a validator reporting fields by their json names,
// with the cpf and uf tags registered.
func New() *EchoValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("cpf", func(fl playground.FieldLevel) bool {
		return util.IsValidCPF(fl.Field().String())
	})
	_ = validate.RegisterValidation("uf", func(fl playground.FieldLevel) bool {
		return entity.IsValidState(fl.Field().String())
	})

	return &EchoValidator{validate: validate}
}

// Validate validates a bound request struct.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.WithStack(err)
		}

		return &Error{Fields: fieldErrors(fieldErrs)}
	}

	return nil
}

// Error lists the failing fields with the tag that rejected each.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Is lets the error match domainerrors.ErrValidationFailed.
func (e *Error) Is(target error) bool {
	return errors.Is(domainerrors.ErrValidationFailed, target)
}

func fieldErrors(errs playground.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		fields[path] = fe.Tag()
	}

	return fields
}
