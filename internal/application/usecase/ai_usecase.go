package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hspsystem/gestor-api/internal/application/ports"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

const (
	reportTimeout      = 30 * time.Second
	reportSampleOrders = 20

	// Mensajes fijos hacia el usuario: el informe nunca falla con error HTTP.
	reportEmptyFallback = "Não foi possível gerar a análise no momento."
	reportErrorFallback = "Erro ao conectar com a IA. Verifique sua chave de API ou tente novamente mais tarde."
)

// AIUseCase genera el informe de negocio con el servicio de IA. Cualquier
// fallo del proveedor se degrada a un mensaje fijo, nunca a un error.
type AIUseCase struct {
	repo repository.StateRepository
	llm  ports.LLMService
	log  *logger.Logger
}

// NewAIUseCase crea el caso de uso de informes con IA.
func NewAIUseCase(repo repository.StateRepository, llm ports.LLMService, log *logger.Logger) *AIUseCase {
	return &AIUseCase{repo: repo, llm: llm, log: log}
}

type sampledOrder struct {
	Date  string   `json:"date"`
	Total string   `json:"total"`
	Items []string `json:"items"`
}

// BusinessReport arma el resumen de datos (receita total, pedidos, clientes,
// estoque bajo y una muestra de pedidos recientes) y pide el informe al LLM.
func (uc *AIUseCase) BusinessReport(ctx context.Context) string {
	orders, err := uc.repo.Orders()
	if err != nil {
		uc.log.Error().Err(err).Msg("informe IA: cargar pedidos")
		return reportErrorFallback
	}
	products, err := uc.repo.Products()
	if err != nil {
		uc.log.Error().Err(err).Msg("informe IA: cargar productos")
		return reportErrorFallback
	}
	customers, err := uc.repo.Customers()
	if err != nil {
		uc.log.Error().Err(err).Msg("informe IA: cargar clientes")
		return reportErrorFallback
	}

	totalRevenue := decimal.Zero
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.Total)
	}

	var lowStock []string
	for _, p := range products {
		if p.Stock < 5 {
			lowStock = append(lowStock, p.Name)
		}
	}
	lowStockList := strings.Join(lowStock, ", ")
	if lowStockList == "" {
		lowStockList = "Nenhum"
	}

	recent := orders
	if len(recent) > reportSampleOrders {
		recent = recent[len(recent)-reportSampleOrders:]
	}
	sample := make([]sampledOrder, 0, len(recent))
	for _, o := range recent {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, it.ProductName)
		}
		sample = append(sample, sampledOrder{
			Date:  o.Date.Format(time.RFC3339),
			Total: o.Total.StringFixed(2),
			Items: items,
		})
	}
	sampleJSON, _ := json.Marshal(sample)

	summary := fmt.Sprintf(`Atue como um consultor de negócios sênior. Analise os seguintes dados de vendas de uma pequena empresa e forneça um relatório conciso e acionável em Português.

Dados Gerais:
- Receita Total: R$ %s
- Total de Pedidos: %d
- Total de Clientes: %d
- Produtos com estoque baixo (<5): %s

Amostra de Pedidos Recentes (JSON):
%s

Por favor, forneça:
1. Uma análise de tendência breve.
2. Sugestões para melhorar as vendas.
3. Alertas sobre estoque ou gestão de clientes.

Use formatação Markdown clara.`,
		totalRevenue.StringFixed(2), len(orders), len(customers), lowStockList, sampleJSON)

	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	report, err := uc.llm.GenerateReport(ctx, summary)
	if err != nil {
		uc.log.Error().Err(err).Msg("informe IA: fallo del proveedor")
		return reportErrorFallback
	}
	if report == "" {
		return reportEmptyFallback
	}
	return report
}
