package kv

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-local/pkg/config"
)

// FromConfig construye el backend KV seleccionado en la configuración.
func FromConfig(ctx context.Context, cfg config.StoreConfig) (KV, error) {
	switch cfg.Backend {
	case config.BackendMemoria:
		return NewMemory(), nil
	case config.BackendArchivo:
		return NewFile(afero.NewOsFs(), cfg.Path), nil
	case config.BackendRedis:
		return NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case config.BackendPostgres:
		return NewPostgres(ctx, cfg.DB.ConnectionString())
	default:
		return nil, fmt.Errorf("backend desconocido: %q", cfg.Backend)
	}
}
