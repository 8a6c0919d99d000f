package dto

// CreateValidacionRequest registro de un intento de validación de acceso.
type CreateValidacionRequest struct {
	Cedula           string `json:"cedula" validate:"required"`
	MetodoValidacion string `json:"metodo_validacion" validate:"required"`
	IDPuntoVenta     string `json:"id_punto_venta"`
	Exitosa          int    `json:"exitosa"`
	MensajeError     string `json:"mensaje_error"`
}
