package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/catalog"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kv"
	"github.com/jhoicas/inventario-local/internal/infrastructure/store"
)

func newCatalogUC(t *testing.T) (*catalog.CatalogUseCase, *store.Accessor) {
	t.Helper()
	almacen := store.New(kv.NewMemory())
	return catalog.NewCatalogUseCase(almacen), almacen
}

func TestSeedDemo_CargaCatalogoYStockInicial(t *testing.T) {
	uc, almacen := newCatalogUC(t)

	require.NoError(t, uc.SeedDemo())

	products := uc.List("")
	assert.NotEmpty(t, products)

	initial, corrupt := almacen.Initial()
	assert.False(t, corrupt)
	assert.NotEmpty(t, initial)

	_, ok := uc.LastSync()
	assert.True(t, ok, "la siembra deja marca de sincronización")
}

func TestSeedDemo_EsReemplazoCompleto(t *testing.T) {
	uc, _ := newCatalogUC(t)

	require.NoError(t, uc.Replace(
		[]entity.Product{{Code: "VIEJO", Name: "Producto viejo"}},
		map[string]decimal.Decimal{"VIEJO": decimal.NewFromInt(99)},
	))
	require.NoError(t, uc.SeedDemo())

	assert.Empty(t, uc.List("VIEJO"), "la siembra reemplaza el catálogo anterior")
}

func TestReplace_DescartaProductosSinCodigo(t *testing.T) {
	uc, _ := newCatalogUC(t)

	require.NoError(t, uc.Replace([]entity.Product{
		{Code: "A001", Name: "Martillo"},
		{Code: "  ", Name: "Sin código"},
	}, nil))

	products := uc.List("")
	require.Len(t, products, 1)
	assert.Equal(t, "A001", products[0].Code)
}

func TestList_FiltraPorSubcadena(t *testing.T) {
	uc, _ := newCatalogUC(t)
	require.NoError(t, uc.SeedDemo())

	got := uc.List("martillo")
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Name, "Martillo")
}

func TestReset_DespuesDeSembrar(t *testing.T) {
	uc, almacen := newCatalogUC(t)
	require.NoError(t, uc.SeedDemo())

	require.NoError(t, uc.Reset())

	assert.Empty(t, uc.List(""))
	initial, _ := almacen.Initial()
	assert.Empty(t, initial)
	_, ok := uc.LastSync()
	assert.False(t, ok)
}
