package dto

// ErrorResponse cuerpo de error HTTP. Fields lista los campos inválidos en errores de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}
