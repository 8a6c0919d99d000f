package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udining/pos-api/internal/application/orders"
	"github.com/udining/pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuarioUC       *usecase.UsuarioUseCase
	ProductoUC      *usecase.ProductoUseCase
	PuntoVentaUC    *usecase.PuntoVentaUseCase
	OrdenUC         *orders.UseCase
	DocumentoUC     *usecase.DocumentoUseCase
	AuditoriaUC     *usecase.AuditoriaUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	ValidacionUC    *usecase.ValidacionUseCase
}

// Router registra las rutas de la API. Sin prefijo /api: las rutas replican la
// superficie pública original del backend.
func Router(app *fiber.App, deps RouterDeps) {
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	app.Get("/usuarios", usuarioHandler.List)
	app.Get("/usuarios/:cedula", usuarioHandler.GetByCedula)
	app.Post("/usuarios", usuarioHandler.Create)
	app.Put("/usuarios/:cedula", usuarioHandler.Update)

	productoHandler := NewProductoHandler(deps.ProductoUC)
	app.Get("/productos", productoHandler.List)
	app.Post("/productos", productoHandler.Create)

	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	app.Get("/ordenes", ordenHandler.List)
	app.Get("/ordenes/:id", ordenHandler.Get)
	app.Post("/ordenes", ordenHandler.Create)
	app.Put("/ordenes/:id/estado", ordenHandler.CambiarEstado)

	consultaHandler := NewConsultaHandler(deps.PuntoVentaUC, deps.DocumentoUC, deps.AuditoriaUC, deps.ConfiguracionUC)
	app.Get("/puntos_venta", consultaHandler.PuntosVenta)
	app.Get("/documentos", consultaHandler.Documentos)
	app.Get("/auditoria", consultaHandler.Auditoria)
	app.Get("/configuracion", consultaHandler.Configuracion)

	validacionHandler := NewValidacionHandler(deps.ValidacionUC)
	app.Get("/validaciones", validacionHandler.List)
	app.Post("/validaciones", validacionHandler.Create)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
