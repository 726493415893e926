// Package validation valida los DTOs de entrada con las etiquetas `validate`
// y traduce los fallos a domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/startnet-api/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida s. Devuelve *domain.ValidationError con los nombres JSON de los campos.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := &domain.ValidationError{}
	var details []string
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		switch {
		case fe.Tag() == "required", isEmptyList(fe):
			out.Missing = append(out.Missing, field)
		default:
			out.Invalid = append(out.Invalid, field)
			details = append(details, describe(field, fe))
		}
	}
	if len(details) > 0 {
		out.Detail = strings.Join(details, "; ")
	}
	return out
}

// fieldPath quita el nombre del struct raíz y los structs embebidos (nombres Go en mayúscula).
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for i, p := range parts {
		if i == 0 || p == "" {
			continue
		}
		if r := []rune(p)[0]; unicode.IsUpper(r) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

// Una lista obligatoria enviada vacía ([]) se reporta como faltante.
func isEmptyList(fe validator.FieldError) bool {
	return fe.Tag() == "min" && fe.Kind() == reflect.Slice && fe.Param() == "1"
}

func describe(field string, fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
