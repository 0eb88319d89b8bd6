package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Store define el puerto de persistencia de las colecciones del inventario
// (DIP). Contrato de lectura: los Get nunca fallan — ante clave ausente o
// datos corruptos devuelven el valor vacío del tipo. El segundo retorno
// indica si se sustituyó el valor por defecto a causa de datos corruptos
// (clave simplemente ausente => false), para que el caller pueda observar la
// degradación en lugar de perder datos en silencio.
type Store interface {
	Catalog() ([]entity.Product, bool)
	Entries() ([]entity.Movement, bool)
	Exits() ([]entity.Movement, bool)
	Initial() (map[string]decimal.Decimal, bool)

	// Los Set serializan la colección completa reemplazando el valor
	// anterior (sin semántica de merge parcial).
	SetCatalog(products []entity.Product) error
	SetEntries(movs []entity.Movement) error
	SetExits(movs []entity.Movement) error
	SetInitial(initial map[string]decimal.Decimal) error

	// Append agrega un movimiento al final del log correspondiente.
	AppendEntry(mov entity.Movement) error
	AppendExit(mov entity.Movement) error

	// LastSync marca de última sincronización/siembra. El bool indica presencia.
	LastSync() (time.Time, bool)
	SetLastSync(t time.Time) error

	// Reset elimina las cuatro colecciones y la marca de sincronización,
	// de forma atómica desde la perspectiva del consumidor.
	Reset() error
}
