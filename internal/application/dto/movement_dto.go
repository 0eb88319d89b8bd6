package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest entrada para registrar una entrada de mercancía.
// Quantity llega como texto del formulario; el validador decide si es numérica.
type RegisterEntryRequest struct {
	Code        string `json:"code"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	InvoiceRef  string `json:"invoice_ref"`
	Supplier    string `json:"supplier"`
	Date        string `json:"date"`
}

// RegisterExitRequest entrada para registrar una salida de mercancía.
// No lleva proveedor; la referencia de factura sigue siendo obligatoria.
type RegisterExitRequest struct {
	Code        string `json:"code"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	InvoiceRef  string `json:"invoice_ref"`
	Date        string `json:"date"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Code        string          `json:"code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	InvoiceRef  string          `json:"invoice_ref"`
	Supplier    string          `json:"supplier,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
