// Package storage implementa el gateway de persistencia clave→colección JSON
// con tres backends: archivos locales (equivalente al localStorage original),
// memoria (tests) y PostgreSQL (tabla clave→JSONB).
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
)

// Claves de las nueve colecciones persistidas. Se conservan los nombres del
// esquema original para poder importar un volcado del cliente.
const (
	keyCustomers    = "app_customers"
	keySuppliers    = "app_suppliers"
	keyProducts     = "app_products"
	keyStockEntries = "app_stock_entries"
	keyOrders       = "app_orders"
	keyPromotions   = "app_promotions"
	keyUsers        = "app_users"
	keyEvents       = "app_events"
	keyGoals        = "app_sales_goals"
)

// kv es el contrato mínimo de cada backend: leer el valor crudo de una clave
// (found=false si nunca se escribió) y sobreescribirlo incondicionalmente.
type kv interface {
	load(key string) (data []byte, found bool, err error)
	save(key string, data []byte) error
}

// SeedAdmin credenciales del administrador sembrado cuando la colección de
// usuarios está vacía.
type SeedAdmin struct {
	Username string
	Password string
}

// Store implementa repository.StateRepository sobre cualquier backend kv.
type Store struct {
	kv   kv
	seed SeedAdmin
}

var _ repository.StateRepository = (*Store)(nil)

func newStore(backend kv, seed SeedAdmin) *Store {
	if seed.Username == "" {
		seed.Username = "Administrador"
	}
	if seed.Password == "" {
		seed.Password = "admin123"
		log.Warn().Msg("storage: SEED_ADMIN_PASSWORD no definido, usando credencial de desarrollo")
	}
	return &Store{kv: backend, seed: seed}
}

func loadCollection[T any](backend kv, key string) ([]T, error) {
	data, found, err := backend.load(key)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	if !found {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("storage: decodificar %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveCollection[T any](backend kv, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage: codificar %s: %w", key, err)
	}
	if err := backend.save(key, data); err != nil {
		return fmt.Errorf("storage: guardar %s: %w", key, err)
	}
	return nil
}

func (s *Store) Customers() ([]entity.Customer, error) {
	return loadCollection[entity.Customer](s.kv, keyCustomers)
}
func (s *Store) SaveCustomers(items []entity.Customer) error {
	return saveCollection(s.kv, keyCustomers, items)
}

func (s *Store) Suppliers() ([]entity.Supplier, error) {
	return loadCollection[entity.Supplier](s.kv, keySuppliers)
}
func (s *Store) SaveSuppliers(items []entity.Supplier) error {
	return saveCollection(s.kv, keySuppliers, items)
}

func (s *Store) Products() ([]entity.Product, error) {
	return loadCollection[entity.Product](s.kv, keyProducts)
}
func (s *Store) SaveProducts(items []entity.Product) error {
	return saveCollection(s.kv, keyProducts, items)
}

func (s *Store) StockEntries() ([]entity.StockEntry, error) {
	return loadCollection[entity.StockEntry](s.kv, keyStockEntries)
}
func (s *Store) SaveStockEntries(items []entity.StockEntry) error {
	return saveCollection(s.kv, keyStockEntries, items)
}

func (s *Store) Orders() ([]entity.Order, error) {
	return loadCollection[entity.Order](s.kv, keyOrders)
}
func (s *Store) SaveOrders(items []entity.Order) error {
	return saveCollection(s.kv, keyOrders, items)
}

func (s *Store) Promotions() ([]entity.Promotion, error) {
	return loadCollection[entity.Promotion](s.kv, keyPromotions)
}
func (s *Store) SavePromotions(items []entity.Promotion) error {
	return saveCollection(s.kv, keyPromotions, items)
}

// Users carga la colección de usuarios. Si está vacía (o nunca se escribió),
// siembra y persiste un único administrador antes de devolverla. Esto ocurre
// en cada load que la observe vacía, no solo en el primer arranque.
func (s *Store) Users() ([]entity.User, error) {
	users, err := loadCollection[entity.User](s.kv, keyUsers)
	if err != nil {
		return nil, err
	}
	if len(users) > 0 {
		return users, nil
	}

	admin, err := s.buildSeedAdmin()
	if err != nil {
		return nil, err
	}
	users = []entity.User{admin}
	if err := saveCollection(s.kv, keyUsers, users); err != nil {
		return nil, err
	}
	log.Info().Str("username", admin.Username).Msg("storage: administrador por defecto sembrado")
	return users, nil
}

func (s *Store) SaveUsers(items []entity.User) error {
	return saveCollection(s.kv, keyUsers, items)
}

func (s *Store) Events() ([]entity.CalendarEvent, error) {
	return loadCollection[entity.CalendarEvent](s.kv, keyEvents)
}
func (s *Store) SaveEvents(items []entity.CalendarEvent) error {
	return saveCollection(s.kv, keyEvents, items)
}

func (s *Store) SalesGoals() ([]entity.SalesGoal, error) {
	return loadCollection[entity.SalesGoal](s.kv, keyGoals)
}
func (s *Store) SaveSalesGoals(items []entity.SalesGoal) error {
	return saveCollection(s.kv, keyGoals, items)
}

func (s *Store) buildSeedAdmin() (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("storage: hashear credencial sembrada: %w", err)
	}
	return entity.User{
		ID:           uuid.New().String(),
		Username:     s.seed.Username,
		PasswordHash: string(hash),
		Name:         s.seed.Username,
		Role:         entity.RoleAdmin,
	}, nil
}
