package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// errorMessages maps validation tags to friendly messages.
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"oneof":    "The field '%s' must be one of [%s].",
	"uuid":     "The field '%s' must be a valid UUID.",
	"semver":   "The field '%s' must be a semantic version.",
}

// parseMessage constructs a friendly error message for a field error.
func parseMessage(name string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, name)
		case 2:
			return fmt.Sprintf(msg, name, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", name, e.Tag())
}

// fieldName resolves the reported name of a field: the first of its
// mapstructure or json tag, falling back to the Go field name.
func fieldName(t reflect.Type, e validator.FieldError) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return e.Field()
	}
	field, ok := t.FieldByName(e.StructField())
	if !ok {
		return e.Field()
	}
	for _, key := range []string{"mapstructure", "json"} {
		if tag := strings.Split(field.Tag.Get(key), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return e.StructField()
}

// ValidateStruct validates a struct and returns a map of field names to
// friendly error messages. An empty map means the struct is valid.
func ValidateStruct(s any) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return validationErrors
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		validationErrors["_"] = err.Error()
		return validationErrors
	}

	structType := reflect.TypeOf(s)
	for _, e := range validationErrs {
		name := fieldName(structType, e)
		validationErrors[name] = parseMessage(name, e)
	}
	return validationErrors
}
