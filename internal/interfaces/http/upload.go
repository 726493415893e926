package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain"
)

// uploadField nombre del campo multipart que envía el cliente.
const uploadField = "file"

// readUpload lee el archivo del campo "file" en memoria. Sin archivo es un campo faltante;
// tipo y tamaño los revisa el caso de uso.
func readUpload(c *fiber.Ctx) (dto.FileUpload, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return dto.FileUpload{}, domain.NewMissingFields(uploadField)
		}
		return dto.FileUpload{}, domain.NewInvalid("invalid multipart form", uploadField)
	}
	f, err := fh.Open()
	if err != nil {
		return dto.FileUpload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return dto.FileUpload{}, err
	}
	return dto.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
