package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/reporting"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

func catalogo() []entity.Product {
	return []entity.Product{
		{Code: "A001", Name: "Martillo", Department: "Herramientas"},
		{Code: "B001", Name: "Brocha", Department: "Pinturas"},
		{Code: "C001", Name: "Cinta métrica", Department: "Herramientas"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterProducts_SubcadenaInsensibleAMayusculas(t *testing.T) {
	got := reporting.FilterProducts(catalogo(), "mart")
	require.Len(t, got, 1)
	assert.Equal(t, "Martillo", got[0].Name)

	got = reporting.FilterProducts(catalogo(), "MART")
	require.Len(t, got, 1, "el filtro no distingue mayúsculas")
}

func TestFilterProducts_TambienBuscaPorCodigo(t *testing.T) {
	got := reporting.FilterProducts(catalogo(), "b00")
	require.Len(t, got, 1)
	assert.Equal(t, "B001", got[0].Code)
}

func TestFilterProducts_QueryVacioDevuelveTodo(t *testing.T) {
	assert.Len(t, reporting.FilterProducts(catalogo(), ""), 3)
	assert.Len(t, reporting.FilterProducts(catalogo(), "   "), 3)
}

func TestFilterProducts_SinCoincidencias(t *testing.T) {
	assert.Empty(t, reporting.FilterProducts(catalogo(), "taladro"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterInventory y SortInventory
// ──────────────────────────────────────────────────────────────────────────────

func rowsDe(nombres ...string) []entity.InventoryRow {
	rows := make([]entity.InventoryRow, 0, len(nombres))
	for i, n := range nombres {
		rows = append(rows, entity.InventoryRow{
			Product: entity.Product{Code: string(rune('A'+i)) + "001", Name: n},
		})
	}
	return rows
}

func TestFilterInventory_PorNombre(t *testing.T) {
	rows := rowsDe("Martillo", "Brocha")
	got := reporting.FilterInventory(rows, "bro")
	require.Len(t, got, 1)
	assert.Equal(t, "Brocha", got[0].Product.Name)
}

func TestSortInventory_ColacionEspanola(t *testing.T) {
	rows := rowsDe("Olla", "Ñame", "Nuez")
	sorted := reporting.SortInventory(rows)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Nuez", sorted[0].Product.Name)
	assert.Equal(t, "Ñame", sorted[1].Product.Name,
		"la eñe ordena entre la n y la o")
	assert.Equal(t, "Olla", sorted[2].Product.Name)
}

func TestSortInventory_EsEstable(t *testing.T) {
	rows := []entity.InventoryRow{
		{Product: entity.Product{Code: "Z001", Name: "Martillo"}},
		{Product: entity.Product{Code: "A001", Name: "Martillo"}},
	}
	sorted := reporting.SortInventory(rows)

	assert.Equal(t, "Z001", sorted[0].Product.Code,
		"nombres iguales conservan el orden del catálogo")
	assert.Equal(t, "A001", sorted[1].Product.Code)
}
