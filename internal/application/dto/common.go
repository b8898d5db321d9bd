package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación (deletes, updates de status).
type MessageResponse struct {
	Message string `json:"message"`
}
