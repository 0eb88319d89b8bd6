package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/catalog"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// CatalogHandler maneja las peticiones HTTP del catálogo y las acciones de
// siembra y reinicio.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List devuelve el catálogo, filtrado por ?q= (subcadena sobre código o nombre).
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products := h.uc.List(c.Query("q"))
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponse{
			Code:       p.Code,
			Name:       p.Name,
			Department: p.Department,
		})
	}
	return c.JSON(dto.ProductListResponse{Total: len(items), Items: items})
}

// Seed carga catálogo y stock inicial al por mayor. Cuerpo vacío (o sin
// productos) siembra los datos de demostración.
func (h *CatalogHandler) Seed(c *fiber.Ctx) error {
	var in dto.SeedCatalogRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	var err error
	if len(in.Products) == 0 {
		err = h.uc.SeedDemo()
	} else {
		products := make([]entity.Product, 0, len(in.Products))
		for _, p := range in.Products {
			products = append(products, entity.Product{
				Code:       p.Code,
				Name:       p.Name,
				Department: p.Department,
			})
		}
		initial := in.Initial
		if initial == nil {
			initial = map[string]decimal.Decimal{}
		}
		err = h.uc.Replace(products, initial)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "catálogo cargado"})
}

// Reset elimina todas las colecciones y la marca de sincronización.
func (h *CatalogHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "datos reiniciados"})
}
