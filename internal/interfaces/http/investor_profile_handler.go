package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
)

// InvestorProfileHandler perfil del inversionista y directorio público (/api/investor/profile).
type InvestorProfileHandler struct {
	uc *usecase.InvestorProfileUseCase
}

// NewInvestorProfileHandler construye el handler.
func NewInvestorProfileHandler(uc *usecase.InvestorProfileUseCase) *InvestorProfileHandler {
	return &InvestorProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener mi perfil de inversionista
// @Tags         investor-profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvestorProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investor/profile [get]
func (h *InvestorProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Crear o actualizar mi perfil de inversionista
// @Tags         investor-profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInvestorProfileRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InvestorProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/investor/profile [put]
func (h *InvestorProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvestorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Directorio de inversionistas
// @Tags         investor-profile
// @Security     Bearer
// @Produce      json
// @Param        page           query  int     false  "Página (1-based)"  default(1)
// @Param        limit          query  int     false  "Tamaño de página"  default(10)
// @Param        search         query  string  false  "Nombre, ubicación o skill"
// @Param        portfolioSize  query  string  false  "Bucket exacto; All = sin filtro"
// @Param        minInvestment  query  number  false  "investmentRange.min >= valor"
// @Param        maxInvestment  query  number  false  "investmentRange.max <= valor"
// @Success      200  {object}  dto.InvestorListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/investor/profile/all [get]
func (h *InvestorProfileHandler) List(c *fiber.Ctx) error {
	var q dto.InvestorListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Perfil de inversionista por ID
// @Tags         investor-profile
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.InvestorProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investor/profile/{id} [get]
func (h *InvestorProfileHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadPicture godoc
// @Summary      Subir foto de perfil (inversionista)
// @Tags         investor-profile
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.ProfilePictureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/investor/profile/upload-profile-picture [post]
func (h *InvestorProfileHandler) UploadPicture(c *fiber.Ctx) error {
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
