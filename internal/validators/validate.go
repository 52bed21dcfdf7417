// Package validators hooks request rules into gin's binding validator and
// turns its failures into business errors.
package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

var setup sync.Once

func init() { engine() }

// engine is gin's own validator, so `binding` tags mean the same thing in
// handlers and in use cases.
func engine() *validator.Validate {
	v := binding.Validator.Engine().(*validator.Validate)
	setup.Do(func() {
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
	})
	return v
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Struct checks the binding tags of v.
func Struct(v any) error {
	return Translate(engine().Struct(v))
}

// fieldErrors name the failure of a field whose rule is more than presence.
var fieldErrors = map[string]error{
	"password":     httperr.Validation("password_too_short", "Password must be at least 6 characters"),
	"new_password": httperr.Validation("password_too_short", "New password must be at least 6 characters"),
	"role":         httperr.Validation("invalid_role", "Role must be admin or super_admin"),
	"rating":       httperr.Validation("invalid_rating", "Rating must be between 1 and 5"),
	"items":        httperr.Validation("empty_order", "Order must contain at least one item"),
	"quantity":     httperr.Validation("invalid_quantity", "Quantity must be between 1 and 100"),
}

// Translate maps the first validator failure to a business error. Other
// errors pass through unchanged.
func Translate(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}

	fe := ve[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required", "notblank":
		return httperr.Validation("field_required", "%s is required", field)
	case "email":
		return httperr.Validation("invalid_email", "Invalid email format")
	case "phone":
		return httperr.Validation("invalid_phone", "Invalid phone number")
	}

	if e, ok := fieldErrors[field]; ok {
		return e
	}
	return httperr.Validation("invalid_"+field, "Invalid %s", field)
}

// IsValidation reports whether err came from the validator.
func IsValidation(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
