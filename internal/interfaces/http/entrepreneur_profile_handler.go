package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
)

// EntrepreneurProfileHandler perfil del emprendedor autenticado (/api/profile).
type EntrepreneurProfileHandler struct {
	uc *usecase.EntrepreneurProfileUseCase
}

// NewEntrepreneurProfileHandler construye el handler.
func NewEntrepreneurProfileHandler(uc *usecase.EntrepreneurProfileUseCase) *EntrepreneurProfileHandler {
	return &EntrepreneurProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener mi perfil de emprendedor
// @Tags         entrepreneur-profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntrepreneurProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *EntrepreneurProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Crear o actualizar mi perfil de emprendedor
// @Tags         entrepreneur-profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEntrepreneurProfileRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.EntrepreneurProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *EntrepreneurProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntrepreneurProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar mi perfil de emprendedor
// @Tags         entrepreneur-profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile [delete]
func (h *EntrepreneurProfileHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Profile deleted successfully"})
}

// UploadPicture godoc
// @Summary      Subir foto de perfil (emprendedor)
// @Tags         entrepreneur-profile
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.ProfilePictureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/profile/upload-profile-picture [post]
func (h *EntrepreneurProfileHandler) UploadPicture(c *fiber.Ctx) error {
	file, err := readUpload(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UploadPicture(c.UserContext(), GetUserID(c), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
