package dto

// CreateUsuarioRequest registro de un usuario nuevo.
type CreateUsuarioRequest struct {
	Cedula        string `json:"cedula" validate:"required"`
	TipoDocumento string `json:"tipo_documento"`
	Nombre        string `json:"nombre" validate:"required"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo" validate:"required"`
}

// UpdateUsuarioRequest actualización parcial: los campos vacíos conservan el valor actual.
type UpdateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
	Estado   string `json:"estado"`
}
