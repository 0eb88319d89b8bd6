package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ProductListResponse listado (filtrado) del catálogo.
type ProductListResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}

// SeedCatalogRequest carga al por mayor de catálogo y stock inicial.
// Reemplaza ambas colecciones completas; vacío usa los datos de demostración.
type SeedCatalogRequest struct {
	Products []SeedProduct              `json:"products"`
	Initial  map[string]decimal.Decimal `json:"initial"`
}

// SeedProduct producto dentro de una carga de catálogo.
type SeedProduct struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
