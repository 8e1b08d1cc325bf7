package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
)

func TestReceiveStock_RegistraEntradaYSumaStock(t *testing.T) {
	repo := seedCatalog(t)
	uc := NewInventoryUseCase(repo, testLogger())

	entry, err := uc.ReceiveStock(dto.StockEntryRequest{
		ProductID:  "pa",
		SupplierID: "s1",
		Quantity:   15,
		Cost:       decimal.NewFromFloat(7.50),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Date.IsZero())
	assert.Equal(t, 25, productStock(t, repo, "pa"))

	entries, err := repo.StockEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 15, entries[0].Quantity)
}

func TestReceiveStock_CantidadNoPositivaRechazada(t *testing.T) {
	repo := seedCatalog(t)
	uc := NewInventoryUseCase(repo, testLogger())

	for _, qty := range []int{0, -3} {
		_, err := uc.ReceiveStock(dto.StockEntryRequest{ProductID: "pa", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}

	assert.Equal(t, 10, productStock(t, repo, "pa"), "el stock no cambia")
	entries, err := repo.StockEntries()
	require.NoError(t, err)
	assert.Empty(t, entries, "no se registra ninguna entrada")
}

func TestReceiveStock_ProductoInexistenteRechazado(t *testing.T) {
	repo := seedCatalog(t)
	uc := NewInventoryUseCase(repo, testLogger())

	_, err := uc.ReceiveStock(dto.StockEntryRequest{ProductID: "nope", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
