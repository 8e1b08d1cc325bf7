package repository

import "github.com/hspsystem/gestor-api/internal/domain/entity"

// StateRepository es el gateway de persistencia: nueve colecciones tipadas,
// cada una con un load (valor por defecto vacío si nunca se escribió) y un
// save incondicional que sobreescribe la colección completa. Última escritura
// gana; no hay transacciones entre claves.
//
// El load de usuarios siembra un administrador por defecto: si observa la
// colección vacía, sintetiza y persiste un único usuario ADMIN antes de
// devolverla (en cada load que la encuentre vacía, no solo una vez).
type StateRepository interface {
	Customers() ([]entity.Customer, error)
	SaveCustomers([]entity.Customer) error

	Suppliers() ([]entity.Supplier, error)
	SaveSuppliers([]entity.Supplier) error

	Products() ([]entity.Product, error)
	SaveProducts([]entity.Product) error

	StockEntries() ([]entity.StockEntry, error)
	SaveStockEntries([]entity.StockEntry) error

	Orders() ([]entity.Order, error)
	SaveOrders([]entity.Order) error

	Promotions() ([]entity.Promotion, error)
	SavePromotions([]entity.Promotion) error

	Users() ([]entity.User, error)
	SaveUsers([]entity.User) error

	Events() ([]entity.CalendarEvent, error)
	SaveEvents([]entity.CalendarEvent) error

	SalesGoals() ([]entity.SalesGoal, error)
	SaveSalesGoals([]entity.SalesGoal) error
}
