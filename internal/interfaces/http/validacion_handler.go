package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/application/usecase"
	"github.com/udining/pos-api/internal/domain"
)

// ValidacionHandler maneja las peticiones HTTP del registro de validaciones de acceso.
type ValidacionHandler struct {
	uc *usecase.ValidacionUseCase
}

// NewValidacionHandler construye el handler.
func NewValidacionHandler(uc *usecase.ValidacionUseCase) *ValidacionHandler {
	return &ValidacionHandler{uc: uc}
}

// List godoc
// @Summary      Listar intentos de validación de acceso
// @Tags         validaciones
// @Produce      json
// @Success      200  {array}  entity.ValidacionAcceso
// @Router       /validaciones [get]
func (h *ValidacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar un intento de validación de acceso
// @Tags         validaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateValidacionRequest  true  "Intento de validación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /validaciones [post]
func (h *ValidacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateValidacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Campos requeridos: cedula, metodo_validacion"})
	}
	if err := h.uc.Registrar(c.Context(), in, c.IP()); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Campos requeridos: cedula, metodo_validacion"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Validación registrada correctamente"})
}
