package repository

import (
	"context"

	"github.com/udining/pos-api/internal/domain/entity"
)

// ConfiguracionRepository puerto de lectura de la configuración normativa.
type ConfiguracionRepository interface {
	ListActivas(ctx context.Context) ([]*entity.ConfiguracionNormativa, error)
}
