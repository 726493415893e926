package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Los mensajes viajan tal cual al cliente en el campo "message".
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrUnauthorized       = errors.New("Authorization header missing or invalid format")
	ErrForbidden          = errors.New("user not authorized")
	ErrTokenExpired       = errors.New("Token has expired. Please sign in again.")
	ErrTokenInvalid       = errors.New("Token is not valid")
	ErrUnsupportedMedia   = errors.New("unsupported file type, only images are allowed")
)

// ValidationError describe campos faltantes o inválidos de una petición.
// Envuelve ErrInvalidInput para que errors.Is funcione en la capa HTTP.
type ValidationError struct {
	Missing []string
	Invalid []string
	Detail  string
}

// NewMissingFields crea un ValidationError para campos obligatorios ausentes.
func NewMissingFields(fields ...string) *ValidationError {
	return &ValidationError{Missing: fields}
}

// NewInvalid crea un ValidationError con un mensaje libre.
func NewInvalid(detail string, fields ...string) *ValidationError {
	return &ValidationError{Invalid: fields, Detail: detail}
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	} else if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrInvalidInput.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Empty indica si no se acumuló ningún problema.
func (e *ValidationError) Empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0 && e.Detail == ""
}
