package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - ошибки формы в виде "поле" -> "сообщение".
// Имена полей совпадают с json-тегами, их же видит клиент.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Errors[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator - обертка над go-playground/validator с правилами форм NetworkNode
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// profile-required ищет поле по json-имени, поэтому теги обязательны
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Validate проверяет структуру. Ошибки правил возвращаются как *ValidationError,
// все остальное (например, передан не указатель на структуру) - как есть.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return &ValidationError{Errors: out}
}

// messages - тексты для правил без параметра
var messages = map[string]string{
	"required":         "This field is required",
	"email":            "Must be a valid email address",
	"url":              "Must be a valid URL",
	"http_url":         "Must be a valid URL",
	"hiring-status":    "Must be one of: not_hiring, hiring, actively_hiring",
	"meeting-type":     "Must be one of: virtual, in_person",
	"profile-required": "This field is required to complete your profile",
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		if isSized(fe.Kind()) {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if isSized(fe.Kind()) {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max-words":
		return fmt.Sprintf("Must be %s words or less", fe.Param())
	}
	return fmt.Sprintf("Invalid value (failed on '%s' rule)", fe.Tag())
}

func isSized(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Slice || k == reflect.Map
}
