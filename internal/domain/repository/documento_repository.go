package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// DocumentoRepository puerto de persistencia de documentos equivalentes.
type DocumentoRepository interface {
	Create(ctx context.Context, d *entity.DocumentoEquivalente) error
	List(ctx context.Context) ([]*entity.DocumentoEquivalente, error)
}
