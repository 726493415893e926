package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired el token tenía firma válida pero ya venció.
	ErrExpired = errors.New("jwt: token expirado")
	// ErrInvalid firma, formato o claims incorrectos.
	ErrInvalid = errors.New("jwt: token inválido")
)

// UserClaims identifica a la cuenta dentro del payload ("user": {"id", "accountType"}).
type UserClaims struct {
	ID          string `json:"id"`
	AccountType string `json:"accountType"`
}

// Claims incluye los claims estándar JWT más la cuenta autenticada.
// AccountType viaja en el token para que el middleware decida permisos sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaims `json:"user"`
}

// Generate genera un token HS256 firmado con userID y accountType.
func Generate(secret, userID, accountType, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		User: UserClaims{ID: userID, AccountType: accountType},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID y accountType.
// Un token vencido devuelve ErrExpired; cualquier otro fallo ErrInvalid (envuelto).
func Parse(secret, tokenString string) (userID, accountType string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrExpired
		}
		return "", "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.User.ID == "" {
		return "", "", ErrInvalid
	}
	return claims.User.ID, claims.User.AccountType, nil
}
