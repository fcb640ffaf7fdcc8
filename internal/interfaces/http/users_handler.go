package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/roles-api/internal/application/auth"
	"github.com/tu-usuario/roles-api/internal/application/dto"
	"github.com/tu-usuario/roles-api/internal/domain"
)

// UsersHandler listado de usuarios (ruta protegida).
type UsersHandler struct {
	uc *auth.AuthUseCase
}

// NewUsersHandler construye el handler de usuarios.
func NewUsersHandler(uc *auth.AuthUseCase) *UsersHandler {
	return &UsersHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "no se pudo acceder al almacén de usuarios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(users)
}
