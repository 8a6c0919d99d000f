package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/udining/pos-api/internal/application/audit"
	"github.com/udining/pos-api/internal/application/orders"
	"github.com/udining/pos-api/internal/application/usecase"
	"github.com/udining/pos-api/internal/domain/fiscal"
	"github.com/udining/pos-api/internal/infrastructure/persistence"
	"github.com/udining/pos-api/internal/infrastructure/store"
	httpRouter "github.com/udining/pos-api/internal/interfaces/http"
	"github.com/udining/pos-api/pkg/config"
	"github.com/udining/pos-api/pkg/logger"
)

func main() {
	// La API original expone los montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer st.Close()

	engine := "sqlite"
	if cfg.DB.UsePostgres() {
		engine = "postgres"
	}
	log.Info().Str("engine", engine).Msg("motor de base de datos seleccionado")

	if err := persistence.InitSchema(ctx, st); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	usuarioRepo := persistence.NewUsuarioRepository(st)
	puntoVentaRepo := persistence.NewPuntoVentaRepository(st)
	productoRepo := persistence.NewProductoRepository(st)
	ordenRepo := persistence.NewOrdenRepository(st)
	documentoRepo := persistence.NewDocumentoRepository(st)
	auditoriaRepo := persistence.NewAuditoriaRepository(st)
	validacionRepo := persistence.NewValidacionRepository(st)
	configuracionRepo := persistence.NewConfiguracionRepository(st)
	txRunner := persistence.NewTxRunner(st)

	auditor := audit.NewRecorder(auditoriaRepo, log)
	cufeCalc := fiscal.NewCufeCalculator()

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, auditor)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	puntoVentaUC := usecase.NewPuntoVentaUseCase(puntoVentaRepo)
	ordenUC := orders.NewUseCase(txRunner, ordenRepo, usuarioRepo, cufeCalc, auditor, cfg.Fiscal)
	documentoUC := usecase.NewDocumentoUseCase(documentoRepo)
	auditoriaUC := usecase.NewAuditoriaUseCase(auditoriaRepo)
	configuracionUC := usecase.NewConfiguracionUseCase(configuracionRepo)
	validacionUC := usecase.NewValidacionUseCase(validacionRepo, usuarioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "UDining POS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuarioUC:       usuarioUC,
		ProductoUC:      productoUC,
		PuntoVentaUC:    puntoVentaUC,
		OrdenUC:         ordenUC,
		DocumentoUC:     documentoUC,
		AuditoriaUC:     auditoriaUC,
		ConfiguracionUC: configuracionUC,
		ValidacionUC:    validacionUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
