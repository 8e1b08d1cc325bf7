package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/application/ports"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/inventory"
	"github.com/hspsystem/gestor-api/internal/domain/orders"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// OrderUseCase gestiona el ciclo de vida de pedidos y su reconciliación con
// el inventario. La creación, edición y cancelación siempre escriben las
// colecciones de pedidos y productos juntas.
type OrderUseCase struct {
	repo    repository.StateRepository
	receipt ports.ReceiptGenerator
	log     *logger.Logger
}

// NewOrderUseCase crea el caso de uso de pedidos.
func NewOrderUseCase(repo repository.StateRepository, receipt ports.ReceiptGenerator, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, receipt: receipt, log: log}
}

// buildItems convierte el carrito en líneas de pedido, tomando nombre y
// precio del catálogo actual. Un producto inexistente invalida el pedido.
func buildItems(products []entity.Product, lines []dto.CartLine) ([]entity.OrderItem, error) {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para %s", domain.ErrInvalidInput, p.Name)
		}
		items = append(items, entity.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			Total:       orders.LineTotal(line.Quantity, p.Price),
		})
	}
	return items, nil
}

// Create crea un pedido en estado pending y reserva el stock de sus líneas.
func (uc *OrderUseCase) Create(req dto.SaveOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	customers, err := uc.repo.Customers()
	if err != nil {
		return nil, err
	}
	var customer *entity.Customer
	for i := range customers {
		if customers[i].ID == req.CustomerID {
			customer = &customers[i]
			break
		}
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, req.CustomerID)
	}

	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	items, err := buildItems(products, req.Items)
	if err != nil {
		return nil, err
	}

	totals := orders.ComputeTotals(items, orders.Discount{Mode: req.DiscountMode, Value: req.DiscountValue})

	order := entity.Order{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerAddress: customer.Address,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountValue:   totals.DiscountValue,
		DiscountPercent: totals.DiscountPercent,
		Total:           totals.Total,
		Date:            time.Now(),
		Status:          entity.StatusPending,
		Signature:       req.Signature,
		OrderType:       entity.OrderType(req.OrderType),
	}

	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	all = append(all, order)

	products = inventory.Reserve(products, items)

	if err := uc.repo.SaveOrders(all); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProducts(products); err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_id", order.ID).Str("customer", customer.Name).
		Str("total", order.Total.String()).Msg("pedido creado")
	return &order, nil
}

// Update reemplaza las líneas y el descuento de un pedido abierto. El stock
// se reconcilia devolviendo las líneas anteriores y reservando las nuevas;
// id, fecha, estado y notas de entrega se preservan.
func (uc *OrderUseCase) Update(orderID string, req dto.SaveOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range all {
		if all[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
	}
	current := all[idx]
	if orders.IsTerminal(current.Status) {
		return nil, domain.ErrOrderFinalized
	}

	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	items, err := buildItems(products, req.Items)
	if err != nil {
		return nil, err
	}

	totals := orders.ComputeTotals(items, orders.Discount{Mode: req.DiscountMode, Value: req.DiscountValue})

	updated := current
	updated.Items = items
	updated.Subtotal = totals.Subtotal
	updated.DiscountValue = totals.DiscountValue
	updated.DiscountPercent = totals.DiscountPercent
	updated.Total = totals.Total
	if req.Signature != "" {
		updated.Signature = req.Signature
	}
	if req.OrderType != "" {
		updated.OrderType = entity.OrderType(req.OrderType)
	}
	all[idx] = updated

	products = inventory.Release(products, current.Items)
	products = inventory.Reserve(products, items)

	if err := uc.repo.SaveOrders(all); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProducts(products); err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_id", updated.ID).Msg("pedido editado")
	return &updated, nil
}

// UpdateStatus aplica una transición de la máquina de estados, anexando la
// nota de entrega si viene una.
func (uc *OrderUseCase) UpdateStatus(orderID string, req dto.UpdateOrderStatusRequest) (*entity.Order, error) {
	target := entity.OrderStatus(req.Status)
	switch target {
	case entity.StatusPartiallyDelivered, entity.StatusDelivered, entity.StatusCompleted, entity.StatusCanceled, entity.StatusPending:
	default:
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, req.Status)
	}
	if target == entity.StatusCanceled {
		return uc.Cancel(orderID)
	}

	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != orderID {
			continue
		}
		if !orders.CanTransition(all[i].Status, target) {
			return nil, fmt.Errorf("%w: %s → %s", domain.ErrConflict, all[i].Status, target)
		}
		all[i].Status = target
		all[i].DeliveryNotes = orders.AppendDeliveryNote(all[i].DeliveryNotes, req.DeliveryNote)
		if err := uc.repo.SaveOrders(all); err != nil {
			return nil, err
		}
		uc.log.Info().Str("order_id", orderID).Str("status", string(target)).Msg("estado de pedido actualizado")
		out := all[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
}

// Cancel pasa el pedido a canceled devolviendo al stock la totalidad de sus
// líneas actuales. Cancelar un pedido ya terminal es un conflicto: la
// devolución ocurre exactamente una vez.
func (uc *OrderUseCase) Cancel(orderID string) (*entity.Order, error) {
	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != orderID {
			continue
		}
		if !orders.CanTransition(all[i].Status, entity.StatusCanceled) {
			return nil, fmt.Errorf("%w: el pedido ya está %s", domain.ErrConflict, all[i].Status)
		}

		products, err := uc.repo.Products()
		if err != nil {
			return nil, err
		}
		products = inventory.Release(products, all[i].Items)

		all[i].Status = entity.StatusCanceled
		if err := uc.repo.SaveOrders(all); err != nil {
			return nil, err
		}
		if err := uc.repo.SaveProducts(products); err != nil {
			return nil, err
		}
		uc.log.Info().Str("order_id", orderID).Msg("pedido cancelado, stock devuelto")
		out := all[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
}

// List devuelve todos los pedidos, del más reciente al más antiguo.
func (uc *OrderUseCase) List() ([]entity.Order, error) {
	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return all, nil
}

// Open devuelve los pedidos en curso (pending o partially_delivered), del
// más reciente al más antiguo.
func (uc *OrderUseCase) Open() ([]entity.Order, error) {
	all, err := uc.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if o.IsOpen() {
			out = append(out, o)
		}
	}
	return out, nil
}

// Receivables devuelve los pedidos ya realizados (cuentas por cobrar):
// delivered, completed o partially_delivered.
func (uc *OrderUseCase) Receivables() ([]entity.Order, error) {
	all, err := uc.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if o.IsRealized() {
			out = append(out, o)
		}
	}
	return out, nil
}

// GetByID busca un pedido por id.
func (uc *OrderUseCase) GetByID(orderID string) (*entity.Order, error) {
	all, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == orderID {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderID)
}

// Receipt genera el comprobante PDF del pedido.
func (uc *OrderUseCase) Receipt(orderID string) ([]byte, error) {
	order, err := uc.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return uc.receipt.OrderReceipt(*order)
}
