package entity

// ConfiguracionNormativa es un parámetro de cumplimiento regulatorio (clave única).
// Datos de referencia, rara vez mutados.
type ConfiguracionNormativa struct {
	ID                  string `json:"id"`
	Parametro           string `json:"parametro"`
	Valor               string `json:"valor"`
	Descripcion         string `json:"descripcion"`
	ResolucionAplicable string `json:"resolucion_aplicable"`
	FechaVigencia       string `json:"fecha_vigencia"`
	Activo              int    `json:"activo"`
	FechaActualizacion  string `json:"fecha_actualizacion"`
}
