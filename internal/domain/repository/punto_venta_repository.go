package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// PuntoVentaRepository puerto de lectura de puntos de venta (datos de referencia).
type PuntoVentaRepository interface {
	List(ctx context.Context) ([]*entity.PuntoVenta, error)
	GetByID(ctx context.Context, id string) (*entity.PuntoVenta, error)
}
