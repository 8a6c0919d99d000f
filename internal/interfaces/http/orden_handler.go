package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/application/orders"
	"github.com/udining/pos-api/internal/domain"
)

// OrdenHandler maneja las peticiones HTTP de órdenes.
type OrdenHandler struct {
	uc *orders.UseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *orders.UseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes con nombre de usuario y punto de venta
// @Tags         ordenes
// @Produce      json
// @Success      200  {array}  entity.OrdenResumen
// @Router       /ordenes [get]
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una orden con sus líneas
// @Tags         ordenes
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenConDetalles
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ordenes/{id} [get]
func (h *OrdenHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden con detalle y documento equivalente
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenRequest  true  "Orden con sus líneas"
// @Success      200  {object}  dto.CreateOrdenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ordenes [post]
func (h *OrdenHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Campos requeridos: cedula, id_punto_venta, items"})
	}
	out, err := h.uc.Create(c.Context(), in, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Campos requeridos: cedula, id_punto_venta, items"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de una orden
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ordenes/{id}/estado [put]
func (h *OrdenHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado no válido"})
	}
	if err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Estado, c.IP()); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado no válido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Orden no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Orden actualizada a estado %s", in.Estado)})
}
