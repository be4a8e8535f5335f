package dto

// Response sobre estándar de la API: {success, message, data}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Err construye un cuerpo de error con success=false.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
