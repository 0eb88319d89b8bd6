// Package kv define el almacén clave-valor subyacente a las colecciones del
// inventario y sus implementaciones: memoria (tests), archivo JSON (modo
// offline por defecto), Redis y PostgreSQL.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound la clave no existe en el backend.
var ErrKeyNotFound = errors.New("clave no encontrada")

// KV puerto de acceso clave-valor. Los valores son opacos (JSON serializado
// por la capa de almacén); el backend no interpreta su contenido.
type KV interface {
	// Get devuelve el valor de la clave o ErrKeyNotFound si no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set guarda el valor reemplazando cualquier valor anterior.
	Set(ctx context.Context, key string, value []byte) error
	// Delete elimina las claves indicadas; claves ausentes no son error.
	Delete(ctx context.Context, keys ...string) error
	// Close libera los recursos del backend.
	Close() error
}
