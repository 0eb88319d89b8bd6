package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// RegisterMovementUseCase valida y registra entradas y salidas.
// Todas las verificaciones ocurren antes de tocar el almacén: un rechazo
// nunca deja una colección mutada a medias. La pertenencia al catálogo se
// verifica al insertar, no retroactivamente si el catálogo luego cambia.
type RegisterMovementUseCase struct {
	store repository.Store
	stock *StockUseCase
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(store repository.Store, stock *StockUseCase) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{store: store, stock: stock}
}

// RegisterEntry valida y registra una entrada.
// Rechaza con domain.ErrIncompleteFields si falta algún campo obligatorio o
// la cantidad no es un número positivo, y con domain.ErrUnknownProduct si el
// código normalizado no está en el catálogo. El movimiento se construye con
// el nombre del producto según el catálogo, no el que digitó el operador.
func (uc *RegisterMovementUseCase) RegisterEntry(in dto.RegisterEntryRequest) (*entity.Movement, error) {
	code, qty, err := uc.validateCommon(in.Code, in.Quantity, in.InvoiceRef, in.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Supplier) == "" {
		return nil, domain.ErrIncompleteFields
	}
	product, found := uc.findProduct(code)
	if !found {
		return nil, domain.ErrUnknownProduct
	}
	mov := entity.Movement{
		ID:          uuid.New().String(),
		Type:        entity.MovementTypeEntrada,
		Code:        code,
		ProductName: product.Name,
		Quantity:    qty,
		InvoiceRef:  strings.TrimSpace(in.InvoiceRef),
		Supplier:    strings.TrimSpace(in.Supplier),
		Date:        strings.TrimSpace(in.Date),
		CreatedAt:   time.Now(),
	}
	if err := uc.store.AppendEntry(mov); err != nil {
		return nil, err
	}
	return &mov, nil
}

// RegisterExit valida y registra una salida. Además de las verificaciones de
// la entrada (sin proveedor), calcula el stock disponible sobre todos los
// movimientos previos y rechaza con *domain.InsufficientStockError si la
// cantidad solicitada lo excede. Solicitar exactamente el disponible es válido.
func (uc *RegisterMovementUseCase) RegisterExit(in dto.RegisterExitRequest) (*entity.Movement, error) {
	code, qty, err := uc.validateCommon(in.Code, in.Quantity, in.InvoiceRef, in.Date)
	if err != nil {
		return nil, err
	}
	product, found := uc.findProduct(code)
	if !found {
		return nil, domain.ErrUnknownProduct
	}
	available := uc.stock.ComputeStock(code).Stock
	if qty.GreaterThan(available) {
		return nil, &domain.InsufficientStockError{Available: available}
	}
	mov := entity.Movement{
		ID:          uuid.New().String(),
		Type:        entity.MovementTypeSalida,
		Code:        code,
		ProductName: product.Name,
		Quantity:    qty,
		InvoiceRef:  strings.TrimSpace(in.InvoiceRef),
		Date:        strings.TrimSpace(in.Date),
		CreatedAt:   time.Now(),
	}
	if err := uc.store.AppendExit(mov); err != nil {
		return nil, err
	}
	return &mov, nil
}

// Entries devuelve el log de entradas en orden de registro.
func (uc *RegisterMovementUseCase) Entries() []entity.Movement {
	movs, _ := uc.store.Entries()
	return movs
}

// Exits devuelve el log de salidas en orden de registro.
func (uc *RegisterMovementUseCase) Exits() []entity.Movement {
	movs, _ := uc.store.Exits()
	return movs
}

// validateCommon normaliza el código y verifica los campos comunes a entradas
// y salidas: código no vacío, cantidad numérica positiva, referencia de
// factura y fecha presentes.
func (uc *RegisterMovementUseCase) validateCommon(rawCode, rawQty, invoiceRef, date string) (string, decimal.Decimal, error) {
	code := domaininv.NormalizeCode(rawCode)
	qty, err := decimal.NewFromString(strings.TrimSpace(rawQty))
	switch {
	case code == "",
		err != nil,
		qty.LessThanOrEqual(decimal.Zero),
		strings.TrimSpace(invoiceRef) == "",
		strings.TrimSpace(date) == "":
		return "", decimal.Decimal{}, domain.ErrIncompleteFields
	}
	return code, qty, nil
}

// findProduct busca el código normalizado en el catálogo; ante códigos
// duplicados gana la primera coincidencia.
func (uc *RegisterMovementUseCase) findProduct(code string) (entity.Product, bool) {
	catalog, _ := uc.store.Catalog()
	for _, p := range catalog {
		if domaininv.NormalizeCode(p.Code) == code {
			return p, true
		}
	}
	return entity.Product{}, false
}
