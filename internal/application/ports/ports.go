// Package ports declara los contratos hacia servicios externos que la capa
// de aplicación consume. Las implementaciones viven en infrastructure.
package ports

import (
	"context"

	"github.com/hspsystem/gestor-api/internal/domain/entity"
)

// LLMService genera el informe de negocio en lenguaje natural a partir de un
// resumen de los datos actuales.
type LLMService interface {
	GenerateReport(ctx context.Context, summary string) (string, error)
}

// CompanyRecord datos públicos de una empresa consultada por CNPJ.
type CompanyRecord struct {
	CNPJ         string `json:"cnpj"`
	LegalName    string `json:"razao_social"`
	TradeName    string `json:"nome_fantasia"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Neighborhood string `json:"bairro"`
	City         string `json:"municipio"`
	State        string `json:"uf"`
	Zip          string `json:"cep"`
	Phone        string `json:"ddd_telefone_1"`
	Email        string `json:"email"`
}

// CompanyRegistry consulta el registro público de empresas por CNPJ.
// Devuelve domain.ErrNotFound cuando el CNPJ no figura en el registro.
type CompanyRegistry interface {
	Lookup(ctx context.Context, cnpj string) (*CompanyRecord, error)
}

// ReceiptGenerator produce el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	OrderReceipt(order entity.Order) ([]byte, error)
}
