// Package reporting agrupa el filtrado y ordenamiento de listados
// (servicios puros sobre datos ya calculados, sin efectos).
package reporting

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// FilterProducts filtra el catálogo por subcadena insensible a mayúsculas
// contra código O nombre. Query vacío devuelve todo.
func FilterProducts(items []entity.Product, query string) []entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	filtered := make([]entity.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Code), query) ||
			strings.Contains(strings.ToLower(p.Name), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterInventory filtra filas del reporte con el mismo criterio que
// FilterProducts (subcadena sobre código o nombre del producto).
func FilterInventory(rows []entity.InventoryRow, query string) []entity.InventoryRow {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	filtered := make([]entity.InventoryRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Product.Code), query) ||
			strings.Contains(strings.ToLower(r.Product.Name), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortInventory ordena las filas ascendente por nombre de producto con
// colación española (ñ entre n y o, tildes ignoradas al comparar).
// El orden es estable: filas con el mismo nombre conservan el orden del
// catálogo. Ordena en sitio y devuelve el mismo slice.
func SortInventory(rows []entity.InventoryRow) []entity.InventoryRow {
	c := collate.New(language.Spanish)
	sort.SliceStable(rows, func(i, j int) bool {
		return c.CompareString(rows[i].Product.Name, rows[j].Product.Name) < 0
	})
	return rows
}
