// Package audit registra instantáneas antes/después de las mutaciones en la
// bitácora. El registro es best-effort: un fallo al auditar se loguea y nunca
// bloquea la operación que lo originó.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/pkg/logger"
)

// Recorder agrega filas a la bitácora de auditoría.
type Recorder struct {
	repo repository.AuditoriaRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditoriaRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Registrar agrega una fila con las instantáneas serializadas como JSON.
// Con usuario vacío se registra SISTEMA. Nunca devuelve error.
func (r *Recorder) Registrar(ctx context.Context, tabla, idRegistro, accion string, anteriores, nuevos any, usuario, cedula, ip string) {
	if usuario == "" {
		usuario = entity.UsuarioSistema
	}
	reg := &entity.RegistroAuditoria{
		ID:                uuid.New().String(),
		Tabla:             tabla,
		IDRegistro:        idRegistro,
		Accion:            accion,
		Usuario:           usuario,
		CedulaRelacionada: cedula,
		FechaHora:         time.Now().UTC().Format(time.RFC3339Nano),
		DatosAnteriores:   serialize(anteriores),
		DatosNuevos:       serialize(nuevos),
		IPOrigen:          ip,
	}
	if err := r.repo.Create(ctx, reg); err != nil {
		r.log.Warn().Err(err).
			Str("tabla", tabla).
			Str("id_registro", idRegistro).
			Str("accion", accion).
			Msg("no se pudo registrar la auditoría")
	}
}

// serialize convierte la instantánea a JSON; nil se registra como objeto vacío.
func serialize(v any) string {
	if v == nil {
		return "{}"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
