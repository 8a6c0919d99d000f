package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo bitácora de auditoría: solo inserciones, nunca updates ni deletes.
type AuditoriaRepo struct {
	q store.Querier
}

// NewAuditoriaRepository construye el adaptador de auditoría.
func NewAuditoriaRepository(q store.Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create agrega una fila inmutable a la bitácora.
func (r *AuditoriaRepo) Create(ctx context.Context, a *entity.RegistroAuditoria) error {
	query := `
		INSERT INTO auditoria (id, tabla, id_registro, accion, usuario, cedula_relacionada,
			fecha_hora, datos_anteriores, datos_nuevos, ip_origen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	err := r.q.Exec(ctx, query,
		a.ID, a.Tabla, a.IDRegistro, a.Accion, a.Usuario, a.CedulaRelacionada,
		a.FechaHora, a.DatosAnteriores, a.DatosNuevos, a.IPOrigen,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// ListRecientes devuelve las últimas filas de la bitácora, más recientes primero.
func (r *AuditoriaRepo) ListRecientes(ctx context.Context, limit int) ([]*entity.RegistroAuditoria, error) {
	query := `
		SELECT id, tabla, id_registro, accion, COALESCE(usuario, ''), COALESCE(cedula_relacionada, ''),
		       COALESCE(fecha_hora, ''), COALESCE(datos_anteriores, ''), COALESCE(datos_nuevos, ''),
		       COALESCE(ip_origen, '')
		FROM auditoria ORDER BY fecha_hora DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegistroAuditoria
	for rows.Next() {
		var a entity.RegistroAuditoria
		err := rows.Scan(
			&a.ID, &a.Tabla, &a.IDRegistro, &a.Accion, &a.Usuario, &a.CedulaRelacionada,
			&a.FechaHora, &a.DatosAnteriores, &a.DatosNuevos, &a.IPOrigen,
		)
		if err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
