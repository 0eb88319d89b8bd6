package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/catalog"
	appinv "github.com/jhoicas/inventario-local/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC        *catalog.CatalogUseCase
	RegisterMovement *appinv.RegisterMovementUseCase
	StockUC          *appinv.StockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Catálogo y acciones administrativas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)
	api.Post("/seed", catalogHandler.Seed)
	api.Post("/reset", catalogHandler.Reset)

	// Movimientos y reporte de inventario
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.StockUC)
	api.Post("/entries", inventoryHandler.RegisterEntry)
	api.Get("/entries", inventoryHandler.ListEntries)
	api.Post("/exits", inventoryHandler.RegisterExit)
	api.Get("/exits", inventoryHandler.ListExits)
	api.Get("/inventory", inventoryHandler.Report)
	api.Get("/inventory/:code", inventoryHandler.GetStock)
}
