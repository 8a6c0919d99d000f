package entity

// Estados de envío del documento equivalente al correo del usuario.
const (
	EnvioPendiente = "PENDIENTE"
	EnvioEnviado   = "ENVIADO"
	EnvioError     = "ERROR"
)

// TipoDocumentoEquivalente es el tipo por defecto del documento fiscal emitido por orden.
const TipoDocumentoEquivalente = "DOCUMENTO_EQUIVALENTE"

// DocumentoEquivalente es el recibo fiscal simplificado emitido uno a uno por orden
// (contexto resolución DIAN 000165). El CUFE aquí es una huella de contenido, no una
// firma electrónica real.
type DocumentoEquivalente struct {
	ID                     string `json:"id"`
	IDOrden                string `json:"id_orden"`
	NumeroDocumento        string `json:"numero_documento"`
	TipoDocumento          string `json:"tipo_documento"`
	CUFE                   string `json:"cufe"`
	QRDocumento            string `json:"qr_documento"`
	FechaEmision           string `json:"fecha_emision"`
	FechaEnvioCorreo       string `json:"fecha_envio_correo"`
	EstadoEnvio            string `json:"estado_envio"`
	IntentosEnvio          int    `json:"intentos_envio"`
	URLDocumento           string `json:"url_documento"`
	CumpleResolucion000165 int    `json:"cumple_resolucion_000165"`
	HashDocumento          string `json:"hash_documento"`
}
