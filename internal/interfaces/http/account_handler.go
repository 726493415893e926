package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
)

// AccountHandler baja de cuentas.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// DeleteAccount godoc
// @Summary      Eliminar cuenta
// @Description  Borra perfiles, startups propias y la cuenta. También en /api/entrepreneur/settings/delete-account.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investor/settings/delete-account [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.uc.DeleteAccount(c.UserContext(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Account deleted successfully"})
}
