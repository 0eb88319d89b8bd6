package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: se devuelven al caller de forma síncrona y
// nunca dejan una colección mutada a medias.
var (
	ErrIncompleteFields  = errors.New("campos incompletos o inválidos")
	ErrUnknownProduct    = errors.New("producto no registrado en el catálogo")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError rechazo de una salida por stock insuficiente.
// Lleva la cantidad disponible para que la capa de presentación pueda mostrarla.
type InsufficientStockError struct {
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s", e.Available.String())
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
