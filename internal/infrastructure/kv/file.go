package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
)

var _ KV = (*File)(nil)

// File implementación de KV sobre un único documento JSON en disco
// (mapa clave -> valor serializado). Es el backend por defecto de la
// herramienta offline: un archivo, sin servicios externos.
// El filesystem se abstrae con afero para poder usar MemMapFs en tests.
type File struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFile construye el backend de archivo sobre el filesystem dado.
func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)
	return f.save(doc)
}

func (f *File) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(doc, k)
	}
	return f.save(doc)
}

func (f *File) Close() error { return nil }

// load lee el documento completo. Archivo ausente equivale a documento vacío;
// un documento ilegible también, para no dejar la herramienta inutilizable
// (la capa de almacén reporta la corrupción por clave).
func (f *File) load() (map[string]json.RawMessage, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("leer %s: %w", f.path, err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return map[string]json.RawMessage{}, nil
	}
	return doc, nil
}

// save escribe primero a un archivo temporal y renombra, para no dejar el
// documento truncado si el proceso muere a mitad de escritura.
func (f *File) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		// Algunos filesystems no renombran sobre un destino existente.
		_ = f.fs.Remove(f.path)
		if err := f.fs.Rename(tmp, f.path); err != nil {
			return fmt.Errorf("renombrar %s: %w", tmp, err)
		}
	}
	return nil
}
