// Package inventory contiene el ledger de stock: toda mutación de Stock se
// expresa como delta con signo sobre exactamente un producto. El ledger no
// impone piso (el stock puede quedar negativo); la advertencia previa es
// responsabilidad del cliente.
package inventory

import "github.com/hspsystem/gestor-api/internal/domain/entity"

// ApplyDelta aplica `stock += delta` al producto indicado, mutando el slice
// recibido. Un producto inexistente es un no-op silencioso, no un error.
func ApplyDelta(products []entity.Product, productID string, delta int) []entity.Product {
	for i := range products {
		if products[i].ID == productID {
			products[i].Stock += delta
			break
		}
	}
	return products
}

// Reserve descuenta del stock las cantidades de los ítems (creación de pedido
// o lado "nuevo" de una edición).
func Reserve(products []entity.Product, items []entity.OrderItem) []entity.Product {
	for _, it := range items {
		products = ApplyDelta(products, it.ProductID, -it.Quantity)
	}
	return products
}

// Release devuelve al stock las cantidades de los ítems (cancelación o lado
// "viejo" de una edición). La edición de un pedido es Release(viejos) seguido
// de Reserve(nuevos): un cambio neto de cantidad sobre el mismo producto
// queda correcto aunque pase por dos escrituras.
func Release(products []entity.Product, items []entity.OrderItem) []entity.Product {
	for _, it := range items {
		products = ApplyDelta(products, it.ProductID, it.Quantity)
	}
	return products
}
