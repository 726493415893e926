package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain"
)

// Códigos de error del campo "code".
const (
	CodeValidation         = "VALIDATION"
	CodeInvalidBody        = "INVALID_BODY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeIncorrectPassword  = "INCORRECT_PASSWORD"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeUnsupportedMedia   = "UNSUPPORTED_MEDIA"
	CodeTooLarge           = "PAYLOAD_TOO_LARGE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL"
)

const msgServerError = "Server error"

// respondError traduce errores de dominio a status + dto.ErrorResponse.
// Lo no clasificado es 500 y la causa solo va al log.
func respondError(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	if status == fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: verr.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeInvalidCredentials, Message: domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeEmailExists, Message: domain.ErrEmailAlreadyExists.Error()}
	case errors.Is(err, domain.ErrIncorrectPassword):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeIncorrectPassword, Message: domain.ErrIncorrectPassword.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeMissingToken, Message: domain.ErrUnauthorized.Error()}
	case errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeTokenExpired, Message: domain.ErrTokenExpired.Error(), IsExpired: true}
	case errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeInvalidToken, Message: domain.ErrTokenInvalid.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Message: domain.ErrForbidden.Error()}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: domain.ErrUserNotFound.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return fiber.StatusUnsupportedMediaType, dto.ErrorResponse{Code: CodeUnsupportedMedia, Message: domain.ErrUnsupportedMedia.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: msgServerError}
	}
}

// ErrorHandler para fiber.Config: rutas inexistentes, body demasiado grande y panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusRequestEntityTooLarge:
			code = CodeTooLarge
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = CodeInvalidBody
		case fiber.StatusMethodNotAllowed:
			code = CodeNotFound
		}
		if fe.Code >= fiber.StatusInternalServerError {
			return respondError(c, err)
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}

// badBody respuesta para JSON que no se pudo decodificar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "invalid request body"})
}
