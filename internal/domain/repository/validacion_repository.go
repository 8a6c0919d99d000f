package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// ValidacionRepository puerto del registro de validaciones de acceso (solo-inserción).
type ValidacionRepository interface {
	Create(ctx context.Context, v *entity.ValidacionAcceso) error
	List(ctx context.Context) ([]*entity.ValidacionAcceso, error)
}
