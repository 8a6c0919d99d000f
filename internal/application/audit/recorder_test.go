package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udining/pos-api/internal/application/audit"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/pkg/logger"
)

type repoStub struct {
	rows    []*entity.RegistroAuditoria
	failErr error
}

func (r *repoStub) Create(_ context.Context, reg *entity.RegistroAuditoria) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.rows = append(r.rows, reg)
	return nil
}

func (r *repoStub) ListRecientes(_ context.Context, _ int) ([]*entity.RegistroAuditoria, error) {
	return r.rows, nil
}

func newRecorder(repo *repoStub) *audit.Recorder {
	return audit.NewRecorder(repo, logger.New(logger.Config{Env: "development", Level: "error"}))
}

func TestRegistrar_SerializaInstantaneas(t *testing.T) {
	repo := &repoStub{}
	rec := newRecorder(repo)

	antes := map[string]string{"estado": "PENDIENTE"}
	despues := map[string]string{"estado": "CANCELADA"}
	rec.Registrar(context.Background(), "ordenes", "o-1", entity.AccionUpdate, antes, despues, "operador", "123", "10.0.0.9")

	require.Len(t, repo.rows, 1)
	reg := repo.rows[0]
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "ordenes", reg.Tabla)
	assert.Equal(t, "o-1", reg.IDRegistro)
	assert.Equal(t, entity.AccionUpdate, reg.Accion)
	assert.Equal(t, "operador", reg.Usuario)
	assert.Equal(t, "123", reg.CedulaRelacionada)
	assert.Equal(t, "10.0.0.9", reg.IPOrigen)
	assert.NotEmpty(t, reg.FechaHora)

	var anteriores, nuevos map[string]string
	require.NoError(t, json.Unmarshal([]byte(reg.DatosAnteriores), &anteriores))
	require.NoError(t, json.Unmarshal([]byte(reg.DatosNuevos), &nuevos))
	assert.Equal(t, antes, anteriores)
	assert.Equal(t, despues, nuevos)
}

func TestRegistrar_NilComoObjetoVacio(t *testing.T) {
	repo := &repoStub{}
	rec := newRecorder(repo)

	rec.Registrar(context.Background(), "ordenes", "o-1", entity.AccionInsert, nil, map[string]string{"a": "b"}, "", "123", "")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "{}", repo.rows[0].DatosAnteriores)
}

func TestRegistrar_UsuarioVacioEsSistema(t *testing.T) {
	repo := &repoStub{}
	rec := newRecorder(repo)

	rec.Registrar(context.Background(), "usuarios", "123", entity.AccionUpdate, nil, nil, "", "123", "")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, entity.UsuarioSistema, repo.rows[0].Usuario)
}

// El registro es best-effort: un fallo del repositorio no se propaga.
func TestRegistrar_FailOpen(t *testing.T) {
	repo := &repoStub{failErr: errors.New("tabla bloqueada")}
	rec := newRecorder(repo)

	assert.NotPanics(t, func() {
		rec.Registrar(context.Background(), "ordenes", "o-1", entity.AccionInsert, nil, nil, "", "123", "")
	})
	assert.Empty(t, repo.rows)
}
