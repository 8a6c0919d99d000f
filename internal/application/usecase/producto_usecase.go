package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/udining/pos-api/internal/application/dto"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
)

// ProductoUseCase casos de uso del catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *ProductoUseCase) List(ctx context.Context) ([]*entity.Producto, error) {
	return uc.repo.List(ctx)
}

// Create da de alta un producto disponible. Un código repetido produce
// domain.ErrDuplicate.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	p := &entity.Producto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Categoria:     in.Categoria,
		Precio:        in.Precio,
		Disponible:    1,
		FechaCreacion: time.Now().UTC().Format(time.RFC3339),
	}
	return uc.repo.Create(ctx, p)
}
