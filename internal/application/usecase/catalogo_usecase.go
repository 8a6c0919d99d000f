package usecase

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
)

// PuntoVentaUseCase lectura de puntos de venta.
type PuntoVentaUseCase struct {
	repo repository.PuntoVentaRepository
}

// NewPuntoVentaUseCase construye el caso de uso.
func NewPuntoVentaUseCase(repo repository.PuntoVentaRepository) *PuntoVentaUseCase {
	return &PuntoVentaUseCase{repo: repo}
}

// List devuelve todos los puntos de venta.
func (uc *PuntoVentaUseCase) List(ctx context.Context) ([]*entity.PuntoVenta, error) {
	return uc.repo.List(ctx)
}

// DocumentoUseCase lectura de documentos equivalentes emitidos.
type DocumentoUseCase struct {
	repo repository.DocumentoRepository
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(repo repository.DocumentoRepository) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo}
}

// List devuelve todos los documentos equivalentes.
func (uc *DocumentoUseCase) List(ctx context.Context) ([]*entity.DocumentoEquivalente, error) {
	return uc.repo.List(ctx)
}

// AuditoriaUseCase lectura de la bitácora.
type AuditoriaUseCase struct {
	repo repository.AuditoriaRepository
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(repo repository.AuditoriaRepository) *AuditoriaUseCase {
	return &AuditoriaUseCase{repo: repo}
}

// ListRecientes devuelve las últimas 100 filas, más recientes primero.
func (uc *AuditoriaUseCase) ListRecientes(ctx context.Context) ([]*entity.RegistroAuditoria, error) {
	return uc.repo.ListRecientes(ctx, 100)
}

// ConfiguracionUseCase lectura de la configuración normativa vigente.
type ConfiguracionUseCase struct {
	repo repository.ConfiguracionRepository
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.ConfiguracionRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo}
}

// ListActivas devuelve los parámetros normativos activos.
func (uc *ConfiguracionUseCase) ListActivas(ctx context.Context) ([]*entity.ConfiguracionNormativa, error) {
	return uc.repo.ListActivas(ctx)
}
