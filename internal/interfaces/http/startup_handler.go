package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
)

// StartupHandler fichas de startups: CRUD del dueño, listado público y PDF.
type StartupHandler struct {
	uc *usecase.StartupUseCase
}

// NewStartupHandler construye el handler.
func NewStartupHandler(uc *usecase.StartupUseCase) *StartupHandler {
	return &StartupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear startup
// @Tags         startups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStartupRequest  true  "Datos de la startup"
// @Success      201   {object}  dto.StartupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups [post]
func (h *StartupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStartupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Mis startups
// @Tags         startups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StartupResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups [get]
func (h *StartupHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener startup por ID
// @Tags         startups
// @Produce      json
// @Param        id   path  string  true  "ID de la startup"
// @Success      200  {object}  dto.StartupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups/{id} [get]
func (h *StartupHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar startup (solo dueño)
// @Tags         startups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la startup"
// @Param        body  body  dto.UpdateStartupRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.StartupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups/{id} [put]
func (h *StartupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStartupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar startup (solo dueño)
// @Tags         startups
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la startup"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups/{id} [delete]
func (h *StartupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Startup removed"})
}

// UploadLogo godoc
// @Summary      Subir logo de startup
// @Tags         startups
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.StartupLogoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/upload-startup-logo [post]
func (h *StartupHandler) UploadLogo(c *fiber.Ctx) error {
	file, err := readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UploadLogo(c.UserContext(), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPublic godoc
// @Summary      Explorar startups
// @Tags         startups
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1-based)"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(9)
// @Param        search    query  string  false  "Nombre, industria o descripción"
// @Param        industry  query  string  false  "Industria exacta; All = sin filtro"
// @Success      200  {object}  dto.StartupListResponse
// @Router       /api/investor/startups/all [get]
func (h *StartupHandler) ListPublic(c *fiber.Ctx) error {
	var q dto.StartupListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListPublic(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha PDF de la startup
// @Tags         startups
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la startup"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entrepreneur/startups/{id}/sheet.pdf [get]
func (h *StartupHandler) Sheet(c *fiber.Ctx) error {
	pdf, name, err := h.uc.Sheet(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(pdf)
}
