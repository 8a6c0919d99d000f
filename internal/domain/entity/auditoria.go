package entity

// Acciones registrables en la bitácora de auditoría.
const (
	AccionInsert = "INSERT"
	AccionUpdate = "UPDATE"
	AccionDelete = "DELETE"
)

// UsuarioSistema es el actor por defecto cuando la mutación no proviene de un usuario concreto.
const UsuarioSistema = "SISTEMA"

// RegistroAuditoria es una fila inmutable de la bitácora: instantáneas antes/después
// serializadas como JSON. Nunca se modifica después de insertada.
type RegistroAuditoria struct {
	ID                string `json:"id"`
	Tabla             string `json:"tabla"`
	IDRegistro        string `json:"id_registro"`
	Accion            string `json:"accion"`
	Usuario           string `json:"usuario"`
	CedulaRelacionada string `json:"cedula_relacionada"`
	FechaHora         string `json:"fecha_hora"`
	DatosAnteriores   string `json:"datos_anteriores"`
	DatosNuevos       string `json:"datos_nuevos"`
	IPOrigen          string `json:"ip_origen"`
}
