package entity

import "github.com/shopspring/decimal"

// StockFigure desglose del stock derivado de un código.
// Nunca se persiste: se recalcula sobre los logs completos en cada lectura.
// Stock = Initial + EntriesTotal - ExitsTotal (puede ser negativo si los
// datos son inconsistentes; el cálculo no valida ni recorta).
type StockFigure struct {
	Initial      decimal.Decimal `json:"initial"`
	EntriesTotal decimal.Decimal `json:"entries_total"`
	ExitsTotal   decimal.Decimal `json:"exits_total"`
	Stock        decimal.Decimal `json:"stock"`
}

// InventoryRow fila del reporte de inventario: producto del catálogo más
// sus cifras de stock derivadas.
type InventoryRow struct {
	Product Product     `json:"product"`
	Figures StockFigure `json:"figures"`
}
