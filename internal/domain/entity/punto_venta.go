package entity

// Tipos de servicio de un punto de venta.
const (
	ServicioCafeteria       = "CAFETERIA"
	ServicioRestaurante     = "RESTAURANTE"
	ServicioEspecializado   = "ESPECIALIZADO"
	ServicioCateringInterno = "CATERING_INTERNO"
	ServicioCateringExterno = "CATERING_EXTERNO"
	ServicioVending         = "VENDING"
)

// PuntoVenta es una ubicación física o lógica de venta. Datos de referencia,
// sembrados en la inicialización del esquema.
type PuntoVenta struct {
	ID            string `json:"id"`
	Codigo        string `json:"codigo"`
	Nombre        string `json:"nombre"`
	TipoServicio  string `json:"tipo_servicio"`
	Ubicacion     string `json:"ubicacion"`
	Estado        string `json:"estado"`
	FechaCreacion string `json:"fecha_creacion"`
}
