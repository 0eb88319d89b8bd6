package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// SumByCode reduce un log de movimientos a un mapa código normalizado -> suma
// de cantidades (servicio de dominio, función pura). Los movimientos cuyo
// código normalizado queda vacío se omiten por completo, sin señalar error.
// El orden de la suma no afecta el resultado; el mapa contiene únicamente
// códigos con al menos un movimiento contribuyente.
func SumByCode(movs []entity.Movement) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(movs))
	for _, m := range movs {
		code := NormalizeCode(m.Code)
		if code == "" {
			continue
		}
		totals[code] = totals[code].Add(m.Quantity)
	}
	return totals
}
