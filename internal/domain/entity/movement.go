package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada" // entrada: suma stock
	MovementTypeSalida  = "salida"  // salida: resta stock
)

// Movement representa un movimiento de inventario (entrada o salida).
// Los movimientos son inmutables una vez registrados; los logs son secuencias
// append-only cuyo orden de inserción es el orden cronológico de registro
// (no necesariamente el orden del campo Date, que es la fecha digitada).
type Movement struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Code        string          `json:"code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	InvoiceRef  string          `json:"invoice_ref"`
	Supplier    string          `json:"supplier,omitempty"` // solo entradas
	Date        string          `json:"date"`               // fecha calendario tal como la digitó el operador
	CreatedAt   time.Time       `json:"created_at"`
}
