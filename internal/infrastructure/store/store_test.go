package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kv"
	"github.com/jhoicas/inventario-local/internal/infrastructure/store"
)

func newAccessor(t *testing.T) (*store.Accessor, *kv.Memory) {
	t.Helper()
	backend := kv.NewMemory()
	return store.New(backend), backend
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas: defaults y degradación
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_ClaveAusenteDevuelveVacioSinDegradacion(t *testing.T) {
	a, _ := newAccessor(t)

	catalog, corrupt := a.Catalog()
	assert.Empty(t, catalog)
	assert.False(t, corrupt, "clave ausente no es corrupción")

	entries, corrupt := a.Entries()
	assert.Empty(t, entries)
	assert.False(t, corrupt)

	initial, corrupt := a.Initial()
	assert.Empty(t, initial)
	assert.False(t, corrupt)
}

func TestGet_DatosCorruptosDevuelveVacioConFlag(t *testing.T) {
	a, backend := newAccessor(t)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, store.KeyCatalog, []byte("{esto no es json")))
	require.NoError(t, backend.Set(ctx, store.KeyEntries, []byte(`"tampoco es un arreglo"`)))
	require.NoError(t, backend.Set(ctx, store.KeyInitial, []byte("[1,2,3]")))

	catalog, corrupt := a.Catalog()
	assert.Empty(t, catalog)
	assert.True(t, corrupt, "payload ilegible debe marcar degradación")

	entries, corrupt := a.Entries()
	assert.Empty(t, entries)
	assert.True(t, corrupt)

	initial, corrupt := a.Initial()
	assert.Empty(t, initial)
	assert.True(t, corrupt)
}

func TestMovements_ElementoIlegibleSeOmiteSinTumbarElLog(t *testing.T) {
	a, backend := newAccessor(t)

	// Un movimiento válido y uno con cantidad no numérica.
	payload := `[
		{"id":"1","code":"A001","quantity":"5"},
		{"id":"2","code":"A001","quantity":"no-numerico"}
	]`
	require.NoError(t, backend.Set(context.Background(), store.KeyEntries, []byte(payload)))

	entries, corrupt := a.Entries()
	assert.False(t, corrupt, "el log completo sigue siendo legible")
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras y appends
// ──────────────────────────────────────────────────────────────────────────────

func TestSetCatalog_ReemplazaLaColeccionCompleta(t *testing.T) {
	a, _ := newAccessor(t)

	require.NoError(t, a.SetCatalog([]entity.Product{{Code: "A001", Name: "Martillo"}}))
	require.NoError(t, a.SetCatalog([]entity.Product{{Code: "B001", Name: "Brocha"}}))

	catalog, _ := a.Catalog()
	require.Len(t, catalog, 1, "set reemplaza, no fusiona")
	assert.Equal(t, "B001", catalog[0].Code)
}

func TestSetInitial_NormalizaLasClaves(t *testing.T) {
	a, _ := newAccessor(t)

	require.NoError(t, a.SetInitial(map[string]decimal.Decimal{
		" a001 ": decimal.NewFromInt(10),
		"B002":   decimal.NewFromInt(3),
	}))

	initial, _ := a.Initial()
	require.Len(t, initial, 2)
	assert.True(t, initial["A001"].Equal(decimal.NewFromInt(10)))
	assert.True(t, initial["B002"].Equal(decimal.NewFromInt(3)))
}

func TestAppend_ConservaElOrdenDeRegistro(t *testing.T) {
	a, _ := newAccessor(t)

	for i, code := range []string{"A001", "B002", "C003"} {
		require.NoError(t, a.AppendEntry(entity.Movement{
			ID:       code,
			Code:     code,
			Quantity: decimal.NewFromInt(int64(i + 1)),
		}))
	}

	entries, _ := a.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "A001", entries[0].ID)
	assert.Equal(t, "B002", entries[1].ID)
	assert.Equal(t, "C003", entries[2].ID)
}

func TestAppend_ConcurrenteNoPierdeMovimientos(t *testing.T) {
	a, _ := newAccessor(t)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = a.AppendExit(entity.Movement{Code: "A001", Quantity: decimal.NewFromInt(1)})
		}()
	}
	wg.Wait()

	exits, _ := a.Exits()
	assert.Len(t, exits, n, "dos appends simultáneos no deben perder un movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Marca de sincronización y reset
// ──────────────────────────────────────────────────────────────────────────────

func TestLastSync_AusentePresenteYReset(t *testing.T) {
	a, _ := newAccessor(t)

	_, ok := a.LastSync()
	assert.False(t, ok)

	marca := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	require.NoError(t, a.SetLastSync(marca))

	got, ok := a.LastSync()
	require.True(t, ok)
	assert.True(t, marca.Equal(got))
}

func TestReset_DejaTodasLasColeccionesEnSusDefaults(t *testing.T) {
	a, _ := newAccessor(t)

	require.NoError(t, a.SetCatalog([]entity.Product{{Code: "A001", Name: "Martillo"}}))
	require.NoError(t, a.SetInitial(map[string]decimal.Decimal{"A001": decimal.NewFromInt(10)}))
	require.NoError(t, a.AppendEntry(entity.Movement{Code: "A001", Quantity: decimal.NewFromInt(5)}))
	require.NoError(t, a.AppendExit(entity.Movement{Code: "A001", Quantity: decimal.NewFromInt(2)}))
	require.NoError(t, a.SetLastSync(time.Now()))

	require.NoError(t, a.Reset())

	catalog, corrupt := a.Catalog()
	assert.Empty(t, catalog)
	assert.False(t, corrupt)
	entries, _ := a.Entries()
	assert.Empty(t, entries)
	exits, _ := a.Exits()
	assert.Empty(t, exits)
	initial, _ := a.Initial()
	assert.Empty(t, initial)
	_, ok := a.LastSync()
	assert.False(t, ok, "el reset también elimina la marca de sincronización")
}
