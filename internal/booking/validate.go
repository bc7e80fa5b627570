package booking

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MjedAl/Fyyur/internal/model"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so error payloads use the
// same keys clients send.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("show_time", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && model.StartTimeInRange(t)
	})
	return v
}

// check runs struct validation on record and converts failures into a
// *ValidationError.
func check(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{cause: err}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Problem: problem(fe)})
	}
	return out
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "show_time":
		return "must be between years 1000 and 9999"
	}
	return "failed " + fe.Tag() + " check"
}

func invalidReference(field string, cause error) error {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Problem: "does not reference an existing record"}},
		cause:  cause,
	}
}
