package kv_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/infrastructure/kv"
)

func TestFile_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := kv.NewFile(fs, "inventario.json")
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "catalog", []byte(`[{"code":"A001"}]`)))

	got, err := f.Get(ctx, "catalog")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"code":"A001"}]`, string(got))
}

func TestFile_ClaveAusente(t *testing.T) {
	f := kv.NewFile(afero.NewMemMapFs(), "inventario.json")

	_, err := f.Get(context.Background(), "catalog")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestFile_PersisteEntreInstancias(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	primero := kv.NewFile(fs, "inventario.json")
	require.NoError(t, primero.Set(ctx, "initial-stock", []byte(`{"A001":10}`)))

	// Nueva instancia sobre el mismo filesystem: mismo documento.
	segundo := kv.NewFile(fs, "inventario.json")
	got, err := segundo.Get(ctx, "initial-stock")
	require.NoError(t, err)
	assert.JSONEq(t, `{"A001":10}`, string(got))
}

func TestFile_DocumentoIlegibleEquivaleAVacio(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "inventario.json", []byte("no es json"), 0o644))

	f := kv.NewFile(fs, "inventario.json")
	_, err := f.Get(context.Background(), "catalog")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Escribir sobre el documento ilegible lo reemplaza por uno válido.
	require.NoError(t, f.Set(context.Background(), "catalog", []byte(`[]`)))
	got, err := f.Get(context.Background(), "catalog")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

func TestFile_DeleteEliminaSoloLasClavesIndicadas(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := kv.NewFile(fs, "inventario.json")
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "catalog", []byte(`[]`)))
	require.NoError(t, f.Set(ctx, "entries-log", []byte(`[]`)))

	require.NoError(t, f.Delete(ctx, "catalog", "clave-inexistente"))

	_, err := f.Get(ctx, "catalog")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	_, err = f.Get(ctx, "entries-log")
	assert.NoError(t, err)
}

func TestMemory_RoundTripYDelete(t *testing.T) {
	m := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}
