// Package validation wires go-playground/validator in as echo's request
// validator. Handlers bind a request struct and call c.Validate before any
// business logic runs; a failure surfaces as a BadRequest with the list of
// field violations.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deeplydee/photocards/internal/apperror"
)

// weburl matches http/https URLs with an optional www. prefix, the pattern
// avatar and card links must satisfy.
var weburl = regexp.MustCompile(`^https?://(www\.)?[\w\-._~:/?#\[\]@!$&'()*+,;=]+$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		return weburl.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate checks i against its validate tags and converts failures into the
// error taxonomy so the handler never sees invalid data.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.BadRequest("invalid request", err)
	}
	violations := make([]apperror.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperror.Violation{
			Field: strings.ToLower(fe.Field()),
			Rule:  fe.Tag(),
		})
	}
	return apperror.Validation("validation failed", violations)
}
