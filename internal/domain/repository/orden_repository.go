package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// OrdenRepository puerto de persistencia de órdenes y sus líneas.
type OrdenRepository interface {
	Create(ctx context.Context, o *entity.Orden) error
	CreateDetalle(ctx context.Context, d *entity.DetalleOrden) error
	GetByID(ctx context.Context, id string) (*entity.Orden, error)
	GetDetalles(ctx context.Context, idOrden string) ([]*entity.DetalleOrden, error)
	ListConNombres(ctx context.Context) ([]*entity.OrdenResumen, error)
	UpdateEstado(ctx context.Context, id, estado string) error
}
