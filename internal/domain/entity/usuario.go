package entity

// Estados de un usuario del servicio de alimentación.
const (
	EstadoUsuarioActivo    = "ACTIVO"
	EstadoUsuarioInactivo  = "INACTIVO"
	EstadoUsuarioBloqueado = "BLOQUEADO"
)

// Usuario representa a un comensal registrado, identificado por su cédula.
// Nunca se elimina físicamente; el estado pasa a INACTIVO o BLOQUEADO.
type Usuario struct {
	Cedula                  string `json:"cedula"`
	TipoDocumento           string `json:"tipo_documento"`
	Nombre                  string `json:"nombre"`
	Telefono                string `json:"telefono"`
	Correo                  string `json:"correo"`
	CodigoQR                string `json:"codigo_qr"`
	FechaRegistro           string `json:"fecha_registro"`
	ValidacionLegal         int    `json:"validacion_legal"`
	FechaValidacionLegal    string `json:"fecha_validacion_legal"`
	TerminosAceptados       int    `json:"terminos_aceptados"`
	FechaAceptacionTerminos string `json:"fecha_aceptacion_terminos"`
	Estado                  string `json:"estado"`
}
