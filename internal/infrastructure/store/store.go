// Package store implementa el puerto repository.Store sobre un backend
// clave-valor, con serialización JSON y degradación a valores por defecto
// ante datos corruptos.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kv"
)

// Claves lógicas de las colecciones persistidas.
const (
	KeyCatalog  = "catalog"
	KeyInitial  = "initial-stock"
	KeyEntries  = "entries-log"
	KeyExits    = "exits-log"
	KeyLastSync = "last-sync-marker"
)

var _ repository.Store = (*Accessor)(nil)

// Accessor acceso a las colecciones del inventario sobre un KV.
// Las lecturas nunca fallan: ante clave ausente devuelven el valor vacío del
// tipo, y ante datos corruptos o backend inaccesible devuelven el valor vacío
// con el flag de degradación en true, dejando constancia en el log.
// Un mutex serializa los append y el reset frente a callers concurrentes:
// un append es leer-modificar-escribir sobre la misma lista lógica y dos
// appends simultáneos sin serializar perderían un movimiento.
type Accessor struct {
	mu sync.Mutex
	kv kv.KV
}

// New construye el accessor sobre el backend dado.
func New(backend kv.KV) *Accessor {
	return &Accessor{kv: backend}
}

// Catalog devuelve el catálogo de productos.
func (a *Accessor) Catalog() ([]entity.Product, bool) {
	raw, corrupt, ok := a.read(KeyCatalog)
	if !ok {
		return []entity.Product{}, corrupt
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		a.warnCorrupt(KeyCatalog, err)
		return []entity.Product{}, true
	}
	return products, false
}

// Entries devuelve el log de entradas.
func (a *Accessor) Entries() ([]entity.Movement, bool) {
	return a.movements(KeyEntries)
}

// Exits devuelve el log de salidas.
func (a *Accessor) Exits() ([]entity.Movement, bool) {
	return a.movements(KeyExits)
}

// Initial devuelve el stock inicial por código normalizado.
func (a *Accessor) Initial() (map[string]decimal.Decimal, bool) {
	raw, corrupt, ok := a.read(KeyInitial)
	if !ok {
		return map[string]decimal.Decimal{}, corrupt
	}
	var stored map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &stored); err != nil {
		a.warnCorrupt(KeyInitial, err)
		return map[string]decimal.Decimal{}, true
	}
	// Normalizar claves por si el documento fue editado a mano.
	initial := make(map[string]decimal.Decimal, len(stored))
	for code, qty := range stored {
		norm := inventory.NormalizeCode(code)
		if norm == "" {
			continue
		}
		initial[norm] = initial[norm].Add(qty)
	}
	return initial, false
}

// SetCatalog reemplaza el catálogo completo.
func (a *Accessor) SetCatalog(products []entity.Product) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.write(KeyCatalog, products)
}

// SetEntries reemplaza el log de entradas completo.
func (a *Accessor) SetEntries(movs []entity.Movement) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.write(KeyEntries, movs)
}

// SetExits reemplaza el log de salidas completo.
func (a *Accessor) SetExits(movs []entity.Movement) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.write(KeyExits, movs)
}

// SetInitial reemplaza el stock inicial completo, normalizando las claves.
func (a *Accessor) SetInitial(initial map[string]decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	normalized := make(map[string]decimal.Decimal, len(initial))
	for code, qty := range initial {
		norm := inventory.NormalizeCode(code)
		if norm == "" {
			continue
		}
		normalized[norm] = normalized[norm].Add(qty)
	}
	return a.write(KeyInitial, normalized)
}

// AppendEntry agrega una entrada al final del log.
func (a *Accessor) AppendEntry(mov entity.Movement) error {
	return a.appendMovement(KeyEntries, mov)
}

// AppendExit agrega una salida al final del log.
func (a *Accessor) AppendExit(mov entity.Movement) error {
	return a.appendMovement(KeyExits, mov)
}

// LastSync devuelve la marca de última siembra/sincronización si existe.
func (a *Accessor) LastSync() (time.Time, bool) {
	raw, _, ok := a.read(KeyLastSync)
	if !ok {
		return time.Time{}, false
	}
	var marker string
	if err := json.Unmarshal(raw, &marker); err != nil {
		a.warnCorrupt(KeyLastSync, err)
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, marker)
	if err != nil {
		a.warnCorrupt(KeyLastSync, err)
		return time.Time{}, false
	}
	return t, true
}

// SetLastSync guarda la marca de última siembra/sincronización.
func (a *Accessor) SetLastSync(t time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.write(KeyLastSync, t.Format(time.RFC3339))
}

// Reset elimina las cuatro colecciones y la marca de sincronización.
func (a *Accessor) Reset() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	err := a.kv.Delete(context.Background(), KeyCatalog, KeyInitial, KeyEntries, KeyExits, KeyLastSync)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// movements lee y decodifica un log de movimientos. La decodificación es por
// elemento: un movimiento individual ilegible se omite sin tumbar el log
// completo (contribuye cero al stock, igual que en el cálculo de sumas).
func (a *Accessor) movements(key string) ([]entity.Movement, bool) {
	raw, corrupt, ok := a.read(key)
	if !ok {
		return []entity.Movement{}, corrupt
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		a.warnCorrupt(key, err)
		return []entity.Movement{}, true
	}
	movs := make([]entity.Movement, 0, len(items))
	for _, item := range items {
		var m entity.Movement
		if err := json.Unmarshal(item, &m); err != nil {
			log.Debug().Str("clave", key).Err(err).Msg("movimiento ilegible omitido")
			continue
		}
		movs = append(movs, m)
	}
	return movs, false
}

func (a *Accessor) appendMovement(key string, mov entity.Movement) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	movs, _ := a.movements(key)
	movs = append(movs, mov)
	return a.write(key, movs)
}

// read devuelve el valor crudo de la clave. ok=false cuando no hay valor
// utilizable; corrupt distingue backend caído de clave simplemente ausente.
func (a *Accessor) read(key string) (raw []byte, corrupt, ok bool) {
	raw, err := a.kv.Get(context.Background(), key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, false, false
		}
		a.warnCorrupt(key, err)
		return nil, true, false
	}
	return raw, false, true
}

func (a *Accessor) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := a.kv.Set(context.Background(), key, data); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

func (a *Accessor) warnCorrupt(key string, err error) {
	log.Warn().Str("clave", key).Err(err).
		Msg("datos ilegibles en el almacén; se usa el valor por defecto")
}
