// Package password centraliza el hash bcrypt y la política de contraseñas.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// Cost factor de bcrypt usado para todas las cuentas.
	Cost = 10
	// MinLength longitud mínima de una contraseña nueva.
	MinLength = 8
	// MaxBytes bcrypt ignora lo que pase de 72 bytes; lo rechazamos.
	MaxBytes = 72
)

var (
	ErrTooShort = fmt.Errorf("password must be at least %d characters long", MinLength)
	ErrTooLong  = fmt.Errorf("password must be at most %d bytes long", MaxBytes)
)

// ValidatePolicy aplica las reglas de longitud a una contraseña nueva.
func ValidatePolicy(plain string) error {
	if len([]rune(plain)) < MinLength {
		return ErrTooShort
	}
	if len(plain) > MaxBytes {
		return ErrTooLong
	}
	return nil
}

// Hash genera el hash bcrypt con Cost.
func Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Verify compara plain contra hash. Un desajuste devuelve (false, nil).
func Verify(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt: %w", err)
}
