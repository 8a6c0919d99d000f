package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación del puerto DocumentoRepository. Acepta Store o Tx (Querier).
type DocumentoRepo struct {
	q store.Querier
}

// NewDocumentoRepository construye el adaptador de documentos equivalentes.
func NewDocumentoRepository(q store.Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste el documento equivalente de una orden. numero_documento y cufe
// repetidos producen domain.ErrDuplicate (constraints UNIQUE).
func (r *DocumentoRepo) Create(ctx context.Context, d *entity.DocumentoEquivalente) error {
	query := `
		INSERT INTO documentos_equivalentes (id, id_orden, numero_documento, tipo_documento, cufe,
			qr_documento, fecha_emision, fecha_envio_correo, estado_envio, intentos_envio,
			url_documento, cumple_resolucion_000165, hash_documento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	err := r.q.Exec(ctx, query,
		d.ID, d.IDOrden, d.NumeroDocumento, d.TipoDocumento, nullIfEmpty(d.CUFE),
		d.QRDocumento, d.FechaEmision, d.FechaEnvioCorreo, d.EstadoEnvio, d.IntentosEnvio,
		d.URLDocumento, d.CumpleResolucion000165, d.HashDocumento,
	)
	if err != nil {
		return fmt.Errorf("insert documento_equivalente: %w", err)
	}
	return nil
}

// List devuelve todos los documentos equivalentes emitidos.
func (r *DocumentoRepo) List(ctx context.Context) ([]*entity.DocumentoEquivalente, error) {
	query := `
		SELECT id, id_orden, numero_documento, tipo_documento, COALESCE(cufe, ''),
		       COALESCE(qr_documento, ''), COALESCE(fecha_emision, ''), COALESCE(fecha_envio_correo, ''),
		       estado_envio, intentos_envio, COALESCE(url_documento, ''),
		       cumple_resolucion_000165, COALESCE(hash_documento, '')
		FROM documentos_equivalentes ORDER BY numero_documento`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentoEquivalente
	for rows.Next() {
		var d entity.DocumentoEquivalente
		err := rows.Scan(
			&d.ID, &d.IDOrden, &d.NumeroDocumento, &d.TipoDocumento, &d.CUFE,
			&d.QRDocumento, &d.FechaEmision, &d.FechaEnvioCorreo,
			&d.EstadoEnvio, &d.IntentosEnvio, &d.URLDocumento,
			&d.CumpleResolucion000165, &d.HashDocumento,
		)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
