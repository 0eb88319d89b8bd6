package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appinv "github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/reporting"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y del reporte
// de inventario.
type InventoryHandler struct {
	register *appinv.RegisterMovementUseCase
	stock    *appinv.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *appinv.RegisterMovementUseCase, stock *appinv.StockUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, stock: stock}
}

// RegisterEntry registra una entrada de mercancía.
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.RegisterEntry(in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterExit registra una salida de mercancía.
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.RegisterExit(in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// GetStock devuelve las cifras de stock derivadas para un código.
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	code := c.Params("code")
	fig := h.stock.ComputeStock(code)
	return c.JSON(dto.StockResponse{
		Code:         code,
		Initial:      fig.Initial,
		EntriesTotal: fig.EntriesTotal,
		ExitsTotal:   fig.ExitsTotal,
		Stock:        fig.Stock,
	})
}

// Report devuelve el reporte de inventario: una fila por producto del
// catálogo, filtrado por ?q= y ordenado por nombre con colación española.
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	rows := h.stock.ComputeInventory()
	rows = reporting.FilterInventory(rows, c.Query("q"))
	rows = reporting.SortInventory(rows)

	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryRowResponse{
			Code:         r.Product.Code,
			Name:         r.Product.Name,
			Department:   r.Product.Department,
			Initial:      r.Figures.Initial,
			EntriesTotal: r.Figures.EntriesTotal,
			ExitsTotal:   r.Figures.ExitsTotal,
			Stock:        r.Figures.Stock,
		})
	}
	return c.JSON(dto.InventoryReportResponse{Total: len(out), Rows: out})
}

// ListEntries devuelve el log de entradas completo.
func (h *InventoryHandler) ListEntries(c *fiber.Ctx) error {
	return c.JSON(movementList(h.register.Entries()))
}

// ListExits devuelve el log de salidas completo.
func (h *InventoryHandler) ListExits(c *fiber.Ctx) error {
	return c.JSON(movementList(h.register.Exits()))
}

func movementList(movs []entity.Movement) fiber.Map {
	out := make([]dto.MovementResponse, 0, len(movs))
	for i := range movs {
		out = append(out, toMovementResponse(&movs[i]))
	}
	return fiber.Map{"total": len(out), "movements": out}
}

// movementError traduce los errores de dominio del validador a HTTP.
func movementError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrIncompleteFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos incompletos o inválidos"})
	case errors.Is(err, domain.ErrUnknownProduct):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: "producto no registrado en el catálogo"})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "stock insuficiente",
			Available: insufficient.Available.String(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toMovementResponse(mov *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          mov.ID,
		Type:        mov.Type,
		Code:        mov.Code,
		ProductName: mov.ProductName,
		Quantity:    mov.Quantity,
		InvoiceRef:  mov.InvoiceRef,
		Supplier:    mov.Supplier,
		Date:        mov.Date,
		CreatedAt:   mov.CreatedAt,
	}
}
