package entity

// ValidacionAcceso es el registro de un intento de validación de acceso a un punto
// de venta (QR, cédula, etc.). Solo-inserción, inmutable una vez escrito.
type ValidacionAcceso struct {
	ID               string `json:"id"`
	Cedula           string `json:"cedula"`
	MetodoValidacion string `json:"metodo_validacion"`
	FechaHora        string `json:"fecha_hora"`
	IDPuntoVenta     string `json:"id_punto_venta"`
	Exitosa          int    `json:"exitosa"`
	IPValidacion     string `json:"ip_validacion"`
	MensajeError     string `json:"mensaje_error"`
}
