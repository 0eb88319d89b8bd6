package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// StockUseCase deriva el stock actual por producto. El stock nunca se
// persiste: cada lectura re-suma los logs completos sobre el stock inicial,
// lo que garantiza consistencia bajo logs append-only.
type StockUseCase struct {
	store repository.Store
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(store repository.Store) *StockUseCase {
	return &StockUseCase{store: store}
}

// ComputeStock calcula las cifras de stock para un código:
// stock = inicial + total de entradas - total de salidas.
// Código ausente en stock inicial implica inicial 0. No valida ni recorta:
// con datos inconsistentes el resultado puede ser negativo.
func (uc *StockUseCase) ComputeStock(code string) entity.StockFigure {
	norm := domaininv.NormalizeCode(code)
	initial, _ := uc.store.Initial()
	entries, _ := uc.store.Entries()
	exits, _ := uc.store.Exits()
	return figuresFor(norm, initial, domaininv.SumByCode(entries), domaininv.SumByCode(exits))
}

// ComputeInventory produce una fila de stock por cada producto del catálogo,
// en el orden del catálogo (la capa de reportes re-ordena para presentación).
func (uc *StockUseCase) ComputeInventory() []entity.InventoryRow {
	catalog, _ := uc.store.Catalog()
	initial, _ := uc.store.Initial()
	entries, _ := uc.store.Entries()
	exits, _ := uc.store.Exits()

	entryTotals := domaininv.SumByCode(entries)
	exitTotals := domaininv.SumByCode(exits)

	rows := make([]entity.InventoryRow, 0, len(catalog))
	for _, p := range catalog {
		norm := domaininv.NormalizeCode(p.Code)
		rows = append(rows, entity.InventoryRow{
			Product: p,
			Figures: figuresFor(norm, initial, entryTotals, exitTotals),
		})
	}
	return rows
}

func figuresFor(code string, initial, entryTotals, exitTotals map[string]decimal.Decimal) entity.StockFigure {
	ini := initial[code]
	ent := entryTotals[code]
	sal := exitTotals[code]
	return entity.StockFigure{
		Initial:      ini,
		EntriesTotal: ent,
		ExitsTotal:   sal,
		Stock:        ini.Add(ent).Sub(sal),
	}
}
