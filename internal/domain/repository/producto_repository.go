package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia del catálogo de productos.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	List(ctx context.Context) ([]*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
}
