package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// AuditoriaRepository puerto de la bitácora de auditoría (solo-inserción).
type AuditoriaRepository interface {
	Create(ctx context.Context, r *entity.RegistroAuditoria) error
	ListRecientes(ctx context.Context, limit int) ([]*entity.RegistroAuditoria, error)
}
