package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/application/usecase"
)

// ConsultaHandler agrupa los endpoints de solo lectura: puntos de venta,
// documentos equivalentes, bitácora y configuración normativa.
type ConsultaHandler struct {
	puntosVenta   *usecase.PuntoVentaUseCase
	documentos    *usecase.DocumentoUseCase
	auditoria     *usecase.AuditoriaUseCase
	configuracion *usecase.ConfiguracionUseCase
}

// NewConsultaHandler construye el handler.
func NewConsultaHandler(
	puntosVenta *usecase.PuntoVentaUseCase,
	documentos *usecase.DocumentoUseCase,
	auditoria *usecase.AuditoriaUseCase,
	configuracion *usecase.ConfiguracionUseCase,
) *ConsultaHandler {
	return &ConsultaHandler{
		puntosVenta:   puntosVenta,
		documentos:    documentos,
		auditoria:     auditoria,
		configuracion: configuracion,
	}
}

// PuntosVenta godoc
// @Summary      Listar puntos de venta
// @Tags         puntos_venta
// @Produce      json
// @Success      200  {array}  entity.PuntoVenta
// @Router       /puntos_venta [get]
func (h *ConsultaHandler) PuntosVenta(c *fiber.Ctx) error {
	out, err := h.puntosVenta.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Documentos godoc
// @Summary      Listar documentos equivalentes emitidos
// @Tags         documentos
// @Produce      json
// @Success      200  {array}  entity.DocumentoEquivalente
// @Router       /documentos [get]
func (h *ConsultaHandler) Documentos(c *fiber.Ctx) error {
	out, err := h.documentos.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Auditoria godoc
// @Summary      Últimas 100 filas de la bitácora, más recientes primero
// @Tags         auditoria
// @Produce      json
// @Success      200  {array}  entity.RegistroAuditoria
// @Router       /auditoria [get]
func (h *ConsultaHandler) Auditoria(c *fiber.Ctx) error {
	out, err := h.auditoria.ListRecientes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Configuracion godoc
// @Summary      Configuración normativa activa
// @Tags         configuracion
// @Produce      json
// @Success      200  {array}  entity.ConfiguracionNormativa
// @Router       /configuracion [get]
func (h *ConsultaHandler) Configuracion(c *fiber.Ctx) error {
	out, err := h.configuracion.ListActivas(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
