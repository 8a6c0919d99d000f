package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udining/pos-api/internal/application/audit"
	"github.com/udining/pos-api/internal/application/orders"
	"github.com/udining/pos-api/internal/application/usecase"
	"github.com/udining/pos-api/internal/domain"
	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/fiscal"
	"github.com/udining/pos-api/internal/domain/repository"
	apphttp "github.com/udining/pos-api/internal/interfaces/http"
	"github.com/udining/pos-api/pkg/config"
	"github.com/udining/pos-api/pkg/logger"
)

func TestMain(m *testing.M) {
	// Igual que en main: los montos salen como números JSON.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria. Cubren el mismo contrato que los de persistencia:
// (nil, nil) cuando el registro no existe, domain.ErrDuplicate en claves únicas.
// ──────────────────────────────────────────────────────────────────────────────

type memUsuarioRepo struct {
	mu       sync.Mutex
	usuarios map[string]entity.Usuario
}

func (r *memUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usuarios[u.Cedula]; ok {
		return domain.ErrDuplicate
	}
	r.usuarios[u.Cedula] = *u
	return nil
}

func (r *memUsuarioRepo) GetByCedula(_ context.Context, cedula string) (*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.usuarios[cedula]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		cp := u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usuarios[u.Cedula] = *u
	return nil
}

type memProductoRepo struct {
	mu        sync.Mutex
	productos []entity.Producto
}

func (r *memProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.productos {
		if e.Codigo == p.Codigo {
			return domain.ErrDuplicate
		}
	}
	r.productos = append(r.productos, *p)
	return nil
}

func (r *memProductoRepo) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) List(_ context.Context) ([]*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Producto, len(r.productos))
	for i := range r.productos {
		cp := r.productos[i]
		out[i] = &cp
	}
	return out, nil
}

func (r *memProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == p.ID {
			r.productos[i] = *p
		}
	}
	return nil
}

type memPuntoVentaRepo struct {
	puntos []entity.PuntoVenta
}

func (r *memPuntoVentaRepo) List(_ context.Context) ([]*entity.PuntoVenta, error) {
	out := make([]*entity.PuntoVenta, len(r.puntos))
	for i := range r.puntos {
		cp := r.puntos[i]
		out[i] = &cp
	}
	return out, nil
}

func (r *memPuntoVentaRepo) GetByID(_ context.Context, id string) (*entity.PuntoVenta, error) {
	for _, p := range r.puntos {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

type memOrdenRepo struct {
	mu       sync.Mutex
	ordenes  map[string]entity.Orden
	detalles []entity.DetalleOrden
	usuarios *memUsuarioRepo
	puntos   *memPuntoVentaRepo
}

func (r *memOrdenRepo) Create(_ context.Context, o *entity.Orden) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ordenes[o.ID] = *o
	return nil
}

func (r *memOrdenRepo) CreateDetalle(_ context.Context, d *entity.DetalleOrden) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detalles = append(r.detalles, *d)
	return nil
}

func (r *memOrdenRepo) GetByID(_ context.Context, id string) (*entity.Orden, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.ordenes[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memOrdenRepo) GetDetalles(_ context.Context, idOrden string) ([]*entity.DetalleOrden, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DetalleOrden
	for i := range r.detalles {
		if r.detalles[i].IDOrden == idOrden {
			cp := r.detalles[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrdenRepo) ListConNombres(ctx context.Context) ([]*entity.OrdenResumen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.OrdenResumen
	for _, o := range r.ordenes {
		res := &entity.OrdenResumen{Orden: o}
		if u, _ := r.usuarios.GetByCedula(ctx, o.Cedula); u != nil {
			res.NombreUsuario = u.Nombre
		}
		if p, _ := r.puntos.GetByID(ctx, o.IDPuntoVenta); p != nil {
			res.PuntoVenta = p.Nombre
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *memOrdenRepo) UpdateEstado(_ context.Context, id, estado string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.ordenes[id]; ok {
		o.Estado = estado
		r.ordenes[id] = o
	}
	return nil
}

type memDocumentoRepo struct {
	mu   sync.Mutex
	docs []entity.DocumentoEquivalente
}

func (r *memDocumentoRepo) Create(_ context.Context, d *entity.DocumentoEquivalente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.docs {
		if e.NumeroDocumento == d.NumeroDocumento {
			return domain.ErrDuplicate
		}
	}
	r.docs = append(r.docs, *d)
	return nil
}

func (r *memDocumentoRepo) List(_ context.Context) ([]*entity.DocumentoEquivalente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.DocumentoEquivalente, len(r.docs))
	for i := range r.docs {
		cp := r.docs[i]
		out[i] = &cp
	}
	return out, nil
}

type memConsecutivoRepo struct {
	mu      sync.Mutex
	valores map[string]int64
}

func (r *memConsecutivoRepo) Siguiente(_ context.Context, prefijo, fecha string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := prefijo + "|" + fecha
	r.valores[k]++
	return r.valores[k], nil
}

type memAuditoriaRepo struct {
	mu   sync.Mutex
	rows []entity.RegistroAuditoria
}

func (r *memAuditoriaRepo) Create(_ context.Context, reg *entity.RegistroAuditoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *reg)
	return nil
}

func (r *memAuditoriaRepo) ListRecientes(_ context.Context, limit int) ([]*entity.RegistroAuditoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RegistroAuditoria
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		cp := r.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

type memValidacionRepo struct {
	mu   sync.Mutex
	rows []entity.ValidacionAcceso
}

func (r *memValidacionRepo) Create(_ context.Context, v *entity.ValidacionAcceso) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *v)
	return nil
}

func (r *memValidacionRepo) List(_ context.Context) ([]*entity.ValidacionAcceso, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ValidacionAcceso, len(r.rows))
	for i := range r.rows {
		cp := r.rows[i]
		out[i] = &cp
	}
	return out, nil
}

type memConfiguracionRepo struct {
	rows []entity.ConfiguracionNormativa
}

func (r *memConfiguracionRepo) ListActivas(_ context.Context) ([]*entity.ConfiguracionNormativa, error) {
	var out []*entity.ConfiguracionNormativa
	for i := range r.rows {
		if r.rows[i].Activo == 1 {
			cp := r.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner ejecuta el callback directamente sobre los repos en memoria; los
// caminos de rollback se cubren en los tests del caso de uso.
type memTxRunner struct {
	ordenes      *memOrdenRepo
	documentos   *memDocumentoRepo
	consecutivos *memConsecutivoRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	ordenes repository.OrdenRepository,
	documentos repository.DocumentoRepository,
	consecutivos repository.ConsecutivoRepository,
) error) error {
	return fn(tr.ordenes, tr.documentos, tr.consecutivos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de la aplicación
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	usuarios := &memUsuarioRepo{usuarios: make(map[string]entity.Usuario)}
	puntos := &memPuntoVentaRepo{puntos: []entity.PuntoVenta{
		{ID: "pv-1", Codigo: "CAF-CENTRAL", Nombre: "Cafetería Central", TipoServicio: entity.ServicioCafeteria, Ubicacion: "Bloque A", Estado: "ACTIVO"},
		{ID: "pv-2", Codigo: "REST-INGENIERIA", Nombre: "Restaurante Ingeniería", TipoServicio: entity.ServicioRestaurante, Ubicacion: "Bloque B", Estado: "ACTIVO"},
	}}
	productos := &memProductoRepo{}
	ordenes := &memOrdenRepo{ordenes: make(map[string]entity.Orden), usuarios: usuarios, puntos: puntos}
	documentos := &memDocumentoRepo{}
	consecutivos := &memConsecutivoRepo{valores: make(map[string]int64)}
	auditoria := &memAuditoriaRepo{}
	validaciones := &memValidacionRepo{}
	configuracion := &memConfiguracionRepo{rows: []entity.ConfiguracionNormativa{
		{ID: "cfg-1", Parametro: "IVA_TASA", Valor: "0.19", Activo: 1},
		{ID: "cfg-2", Parametro: "PREFIJO_DOCUMENTO", Valor: "UDINING", Activo: 1},
		{ID: "cfg-3", Parametro: "NIT_EMPRESA", Valor: "860012357-6", Activo: 0},
	}}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	auditor := audit.NewRecorder(auditoria, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UsuarioUC:    usecase.NewUsuarioUseCase(usuarios, auditor),
		ProductoUC:   usecase.NewProductoUseCase(productos),
		PuntoVentaUC: usecase.NewPuntoVentaUseCase(puntos),
		OrdenUC: orders.NewUseCase(
			&memTxRunner{ordenes: ordenes, documentos: documentos, consecutivos: consecutivos},
			ordenes,
			usuarios,
			fiscal.NewCufeCalculator(),
			auditor,
			config.FiscalConfig{Prefijo: "UDINING", NIT: "860012357-6"},
		),
		DocumentoUC:     usecase.NewDocumentoUseCase(documentos),
		AuditoriaUC:     usecase.NewAuditoriaUseCase(auditoria),
		ConfiguracionUC: usecase.NewConfiguracionUseCase(configuracion),
		ValidacionUC:    usecase.NewValidacionUseCase(validaciones, usuarios),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	resp.Body.Close()
	return resp, out
}

func doJSONList(t *testing.T, app *fiber.App, path string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: registro de usuario, catálogo, orden con documento
// equivalente, cambio de estado y bitácora.
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto(t *testing.T) {
	app := buildTestApp()

	// Registro de usuario
	resp, body := doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{
		"cedula": "1098765432",
		"nombre": "Laura Ruiz",
		"correo": "laura@uni.edu.co",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Usuario creado correctamente", body["message"])

	// Cédula duplicada
	resp, body = doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{
		"cedula": "1098765432",
		"nombre": "Otra Persona",
		"correo": "otra@uni.edu.co",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Error al crear usuario o ya existe", body["error"])

	// El usuario quedó con token QR y estado ACTIVO
	resp, body = doJSON(t, app, http.MethodGet, "/usuarios/1098765432", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ACTIVO", body["estado"])
	assert.Equal(t, "CC", body["tipo_documento"])
	assert.Regexp(t, `^UDINING:1098765432:`, body["codigo_qr"])

	// Catálogo
	resp, body = doJSON(t, app, http.MethodPost, "/productos", map[string]any{
		"codigo":    "ALM-001",
		"nombre":    "Almuerzo ejecutivo",
		"categoria": "ALMUERZO",
		"precio":    8500,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Producto creado correctamente", body["message"])

	productos := doJSONList(t, app, "/productos")
	require.Len(t, productos, 1)
	idProducto := productos[0]["id"].(string)
	assert.Equal(t, float64(8500), productos[0]["precio"], "el precio debe serializarse como número")

	// Orden con dos líneas
	resp, body = doJSON(t, app, http.MethodPost, "/ordenes", map[string]any{
		"cedula":         "1098765432",
		"id_punto_venta": "pv-1",
		"metodo_pago":    "SUBSIDIO",
		"items": []map[string]any{
			{"id_producto": idProducto, "cantidad": 1, "precio_unitario": 8500},
			{"id_producto": idProducto, "cantidad": 2, "precio_unitario": 750},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "cuerpo: %v", body)
	assert.Equal(t, "Orden creada y documento equivalente generado", body["message"])
	idOrden := body["idOrden"].(string)
	require.NotEmpty(t, idOrden)

	numeroEsperado := fmt.Sprintf("UDINING-%s-000001", fiscal.FechaDocumento(time.Now()))
	assert.Equal(t, numeroEsperado, body["numero_documento"])
	cufe := body["cufe"].(string)
	assert.Regexp(t, "^[0-9A-F]{64}$", cufe)

	// Orden con detalles y totales: subtotal 10000, IVA 1900, total 11900
	resp, body = doJSON(t, app, http.MethodGet, "/ordenes/"+idOrden, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10000), body["subtotal"])
	assert.Equal(t, float64(1900), body["impuestos"])
	assert.Equal(t, float64(11900), body["total"])
	assert.Equal(t, "COMPLETADA", body["estado"])
	assert.Equal(t, float64(1), body["numero"])
	detalles := body["detalles"].([]any)
	assert.Len(t, detalles, 2)

	// Listado con nombres
	ordenes := doJSONList(t, app, "/ordenes")
	require.Len(t, ordenes, 1)
	assert.Equal(t, "Laura Ruiz", ordenes[0]["nombre_usuario"])
	assert.Equal(t, "Cafetería Central", ordenes[0]["punto_venta"])

	// Documento equivalente emitido
	docs := doJSONList(t, app, "/documentos")
	require.Len(t, docs, 1)
	assert.Equal(t, idOrden, docs[0]["id_orden"])
	assert.Equal(t, cufe, docs[0]["cufe"])
	assert.Equal(t, "PENDIENTE", docs[0]["estado_envio"])

	// Estado inválido: 400 sin tocar la orden
	resp, body = doJSON(t, app, http.MethodPut, "/ordenes/"+idOrden+"/estado", map[string]any{"estado": "ENTREGADA"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estado no válido", body["error"])

	resp, body = doJSON(t, app, http.MethodGet, "/ordenes/"+idOrden, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "COMPLETADA", body["estado"])

	// Transición válida
	resp, body = doJSON(t, app, http.MethodPut, "/ordenes/"+idOrden+"/estado", map[string]any{"estado": "CANCELADA"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Orden actualizada a estado CANCELADA", body["message"])

	// Bitácora: INSERT de la orden y UPDATE del estado, más reciente primero
	logs := doJSONList(t, app, "/auditoria")
	require.GreaterOrEqual(t, len(logs), 2)
	assert.Equal(t, "UPDATE", logs[0]["accion"])
	assert.Equal(t, "ordenes", logs[0]["tabla"])
	assert.Equal(t, "SISTEMA", logs[0]["usuario"])
}

func TestSegundaOrdenIncrementaElConsecutivo(t *testing.T) {
	app := buildTestApp()

	_, _ = doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{
		"cedula": "222", "nombre": "B", "correo": "b@uni.edu.co",
	})

	orden := map[string]any{
		"cedula": "222", "id_punto_venta": "pv-2",
		"items": []map[string]any{{"id_producto": "x", "cantidad": 1, "precio_unitario": 1000}},
	}
	resp, body1 := doJSON(t, app, http.MethodPost, "/ordenes", orden)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body2 := doJSON(t, app, http.MethodPost, "/ordenes", orden)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fecha := fiscal.FechaDocumento(time.Now())
	assert.Equal(t, fmt.Sprintf("UDINING-%s-000001", fecha), body1["numero_documento"])
	assert.Equal(t, fmt.Sprintf("UDINING-%s-000002", fecha), body2["numero_documento"])
	assert.NotEqual(t, body1["cufe"], body2["cufe"], "documentos distintos tienen CUFE distinto")
}

func TestOrdenUsuarioInexistente(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodPost, "/ordenes", map[string]any{
		"cedula": "999", "id_punto_venta": "pv-1",
		"items": []map[string]any{{"id_producto": "x", "cantidad": 1, "precio_unitario": 100}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", body["error"])
}

func TestOrdenSinItems(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodPost, "/ordenes", map[string]any{
		"cedula": "1098765432", "id_punto_venta": "pv-1", "items": []map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Campos requeridos: cedula, id_punto_venta, items", body["error"])
}

func TestUsuarioCamposFaltantes(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{"cedula": "111"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Campos requeridos: cedula, nombre, correo", body["error"])
}

func TestUsuarioNoEncontrado(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodGet, "/usuarios/000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", body["error"])
}

func TestOrdenNoEncontrada(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodGet, "/ordenes/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Orden no encontrada", body["error"])
}

func TestActualizarUsuarioParcial(t *testing.T) {
	app := buildTestApp()
	_, _ = doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{
		"cedula": "333", "nombre": "Carlos Mesa", "correo": "carlos@uni.edu.co", "telefono": "3001112233",
	})

	resp, body := doJSON(t, app, http.MethodPut, "/usuarios/333", map[string]any{"estado": "BLOQUEADO"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Usuario actualizado correctamente", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/usuarios/333", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "BLOQUEADO", body["estado"])
	assert.Equal(t, "Carlos Mesa", body["nombre"], "los campos no enviados conservan su valor")
	assert.Equal(t, "3001112233", body["telefono"])

	// La actualización dejó rastro en la bitácora
	logs := doJSONList(t, app, "/auditoria")
	require.NotEmpty(t, logs)
	assert.Equal(t, "usuarios", logs[0]["tabla"])
	assert.Equal(t, "UPDATE", logs[0]["accion"])
}

func TestPuntosVentaYConfiguracion(t *testing.T) {
	app := buildTestApp()

	puntos := doJSONList(t, app, "/puntos_venta")
	assert.Len(t, puntos, 2)

	// Solo los parámetros activos
	cfg := doJSONList(t, app, "/configuracion")
	require.Len(t, cfg, 2)
	for _, row := range cfg {
		assert.Equal(t, float64(1), row["activo"])
	}
}

func TestValidaciones(t *testing.T) {
	app := buildTestApp()
	_, _ = doJSON(t, app, http.MethodPost, "/usuarios", map[string]any{
		"cedula": "444", "nombre": "D", "correo": "d@uni.edu.co",
	})

	resp, body := doJSON(t, app, http.MethodPost, "/validaciones", map[string]any{
		"cedula": "444", "metodo_validacion": "QR", "id_punto_venta": "pv-1", "exitosa": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Validación registrada correctamente", body["message"])

	// Usuario inexistente
	resp, body = doJSON(t, app, http.MethodPost, "/validaciones", map[string]any{
		"cedula": "999", "metodo_validacion": "QR",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", body["error"])

	rows := doJSONList(t, app, "/validaciones")
	require.Len(t, rows, 1)
	assert.Equal(t, "444", rows[0]["cedula"])
	assert.Equal(t, "QR", rows[0]["metodo_validacion"])
	assert.Equal(t, float64(1), rows[0]["exitosa"])
}

func TestHealth(t *testing.T) {
	app := buildTestApp()
	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
