package dto

// ErrorResponse cuerpo de error HTTP: un único campo error, como expone la API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de éxito con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
