package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/reporting"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// CatalogUseCase listado y carga del catálogo, siembra de demostración y
// reinicio completo. El catálogo y el stock inicial se cargan al por mayor
// (reemplazo completo) y se leen muchas veces; nunca se editan en sitio.
type CatalogUseCase struct {
	store repository.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store repository.Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// List devuelve el catálogo filtrado por subcadena (código o nombre,
// insensible a mayúsculas). Query vacío devuelve todo el catálogo.
func (uc *CatalogUseCase) List(query string) []entity.Product {
	products, _ := uc.store.Catalog()
	return reporting.FilterProducts(products, query)
}

// Replace reemplaza catálogo y stock inicial completos y actualiza la marca
// de última siembra. Los logs de movimientos no se tocan.
func (uc *CatalogUseCase) Replace(products []entity.Product, initial map[string]decimal.Decimal) error {
	cleaned := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.Code) == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if err := uc.store.SetCatalog(cleaned); err != nil {
		return err
	}
	if err := uc.store.SetInitial(initial); err != nil {
		return err
	}
	return uc.store.SetLastSync(time.Now())
}

// SeedDemo carga el catálogo de demostración (ferretería) con su stock
// inicial, reemplazando lo que hubiera.
func (uc *CatalogUseCase) SeedDemo() error {
	return uc.Replace(demoCatalog(), demoInitial())
}

// Reset elimina las cuatro colecciones y la marca de sincronización.
// Tras un reset, todas las lecturas devuelven sus valores vacíos.
func (uc *CatalogUseCase) Reset() error {
	return uc.store.Reset()
}

// LastSync expone la marca de última siembra para la pantalla de estado.
func (uc *CatalogUseCase) LastSync() (time.Time, bool) {
	return uc.store.LastSync()
}

func demoCatalog() []entity.Product {
	return []entity.Product{
		{Code: "A001", Name: "Martillo de uña 16oz", Department: "Herramientas"},
		{Code: "A002", Name: "Destornillador de pala", Department: "Herramientas"},
		{Code: "A003", Name: "Llave inglesa 10\"", Department: "Herramientas"},
		{Code: "B001", Name: "Tornillo drywall 6x1 (caja x100)", Department: "Fijaciones"},
		{Code: "B002", Name: "Puntilla 2\" (libra)", Department: "Fijaciones"},
		{Code: "C001", Name: "Pintura blanca vinilo (galón)", Department: "Pinturas"},
		{Code: "C002", Name: "Brocha 3\"", Department: "Pinturas"},
		{Code: "D001", Name: "Cable duplex #12 (metro)", Department: "Eléctricos"},
		{Code: "D002", Name: "Multitoma de 4 puestos", Department: "Eléctricos"},
	}
}

func demoInitial() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"A001": decimal.NewFromInt(10),
		"A002": decimal.NewFromInt(25),
		"A003": decimal.NewFromInt(8),
		"B001": decimal.NewFromInt(40),
		"B002": decimal.NewFromInt(120),
		"C001": decimal.NewFromInt(15),
		"C002": decimal.NewFromInt(30),
		"D001": decimal.NewFromInt(200),
		"D002": decimal.NewFromInt(5),
	}
}
