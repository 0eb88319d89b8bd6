package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available cantidad disponible; solo presente en INSUFFICIENT_STOCK.
	Available string `json:"available,omitempty"`
}
