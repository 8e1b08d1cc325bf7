package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

// SaveProductRequest payload de alta y edición de productos.
type SaveProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	Stock       *int            `json:"stock,omitempty"` // solo en alta; en edición se ignora
	Image       string          `json:"image,omitempty"`
	SupplierID  string          `json:"supplierId,omitempty"`
}

// SaveCustomerRequest payload de alta y edición de clientes.
type SaveCustomerRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address entity.Address `json:"address"`
	CNPJ    string         `json:"cnpj,omitempty"`
}

// SaveSupplierRequest payload de alta y edición de proveedores.
type SaveSupplierRequest struct {
	Name    string          `json:"name"`
	CNPJ    string          `json:"cnpj"`
	Contact string          `json:"contact"`
	Email   string          `json:"email"`
	Address *entity.Address `json:"address,omitempty"`
}

// StockEntryRequest payload de recepción de mercadería.
type StockEntryRequest struct {
	ProductID  string          `json:"productId"`
	SupplierID string          `json:"supplierId"`
	Quantity   int             `json:"quantity"`
	Cost       decimal.Decimal `json:"cost"`
}

// SavePromotionRequest payload de alta y edición de promociones.
type SavePromotionRequest struct {
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Active          bool            `json:"active"`
}
