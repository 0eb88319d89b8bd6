// seed carga el catálogo de demostración (y su stock inicial) en el backend
// configurado, o con -reset elimina todas las colecciones.
//
// Uso: go run ./cmd/seed [-reset]
// Lee la misma configuración que el servidor (STORE_BACKEND, STORE_PATH, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-local/internal/application/catalog"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kv"
	"github.com/jhoicas/inventario-local/internal/infrastructure/store"
	"github.com/jhoicas/inventario-local/pkg/config"
)

func main() {
	reset := flag.Bool("reset", false, "eliminar todas las colecciones en lugar de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	backend, err := kv.FromConfig(context.Background(), cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar backend %s: %v\n", cfg.Store.Backend, err)
		os.Exit(1)
	}
	defer backend.Close()

	uc := catalog.NewCatalogUseCase(store.New(backend))

	if *reset {
		if err := uc.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Reset: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Colecciones eliminadas.")
		return
	}

	if err := uc.SeedDemo(); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar demo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Catálogo de demostración cargado en backend %s.\n", cfg.Store.Backend)
}
