package dto

import "github.com/shopspring/decimal"

// StockResponse cifras de stock derivadas para un código.
type StockResponse struct {
	Code         string          `json:"code"`
	Initial      decimal.Decimal `json:"initial"`
	EntriesTotal decimal.Decimal `json:"entries_total"`
	ExitsTotal   decimal.Decimal `json:"exits_total"`
	Stock        decimal.Decimal `json:"stock"`
}

// InventoryRowResponse fila del reporte de inventario.
type InventoryRowResponse struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Department   string          `json:"department"`
	Initial      decimal.Decimal `json:"initial"`
	EntriesTotal decimal.Decimal `json:"entries_total"`
	ExitsTotal   decimal.Decimal `json:"exits_total"`
	Stock        decimal.Decimal `json:"stock"`
}

// InventoryReportResponse reporte de inventario completo.
type InventoryReportResponse struct {
	Total int                    `json:"total"`
	Rows  []InventoryRowResponse `json:"rows"`
}
