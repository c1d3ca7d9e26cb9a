package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// fakeReader inventario de solo lectura con un único producto.
type fakeReader struct {
	product *entity.Product
}

func (r *fakeReader) GetProduct(productID string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == productID {
		return r.product.Clone(), nil
	}
	return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
}

// fakeLLM captura la entrada y devuelve una respuesta fija o un error.
type fakeLLM struct {
	gotInput dto.ReorderSuggestionInput
	result   *dto.ReorderSuggestionDTO
	err      error
}

func (f *fakeLLM) SuggestReorderQuantity(ctx context.Context, input dto.ReorderSuggestionInput) (*dto.ReorderSuggestionDTO, error) {
	f.gotInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func fixtureProduct() *entity.Product {
	day := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return &entity.Product{
		ID: "p-1", Name: "Organic Green Tea", Stock: 7, LowStockThreshold: 10,
		Transactions: []entity.Transaction{
			{ID: "t-1", Type: entity.TransactionTypePurchase, Quantity: 10,
				PricePerUnit: decimal.RequireFromString("5.50"), Date: day},
			{ID: "t-2", Type: entity.TransactionTypeSale, Quantity: 3,
				PricePerUnit: decimal.RequireFromString("12.00"), Date: day.AddDate(0, 0, 10)},
		},
	}
}

func TestSuggest_ArmaElResumenParaElModelo(t *testing.T) {
	llm := &fakeLLM{result: &dto.ReorderSuggestionDTO{ReorderQuantity: 15, Reasoning: "stock bajo"}}
	uc := usecase.NewReorderUseCase(&fakeReader{product: fixtureProduct()}, llm)

	result, err := uc.Suggest(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, 15, result.ReorderQuantity)
	assert.Equal(t, "stock bajo", result.Reasoning)

	assert.Equal(t, "Organic Green Tea", llm.gotInput.ProductName)
	assert.Equal(t, 7, llm.gotInput.CurrentStockLevel)
	assert.Equal(t, "Sold 3 at $12.00 on 2024-01-25", llm.gotInput.PastSalesData)
	assert.Equal(t, "Purchased 10 at $5.50 on 2024-01-15", llm.gotInput.PastPurchaseData)
}

func TestSuggest_SinHistorialUsaLosLiterales(t *testing.T) {
	product := &entity.Product{ID: "p-1", Name: "Nuevo", Stock: 0, Transactions: []entity.Transaction{}}
	llm := &fakeLLM{result: &dto.ReorderSuggestionDTO{ReorderQuantity: 5, Reasoning: "sin datos"}}
	uc := usecase.NewReorderUseCase(&fakeReader{product: product}, llm)

	_, err := uc.Suggest(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "No sales data", llm.gotInput.PastSalesData)
	assert.Equal(t, "No purchase data", llm.gotInput.PastPurchaseData)
}

func TestSuggest_VariasTransaccionesSeUnenConComa(t *testing.T) {
	product := fixtureProduct()
	product.Transactions = append(product.Transactions, entity.Transaction{
		ID: "t-3", Type: entity.TransactionTypeSale, Quantity: 2,
		PricePerUnit: decimal.RequireFromString("12.50"),
		Date:         time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	})
	llm := &fakeLLM{result: &dto.ReorderSuggestionDTO{}}
	uc := usecase.NewReorderUseCase(&fakeReader{product: product}, llm)

	_, err := uc.Suggest(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t,
		"Sold 3 at $12.00 on 2024-01-25, Sold 2 at $12.50 on 2024-02-01",
		llm.gotInput.PastSalesData)
}

func TestSuggest_ProductoInexistenteNoLlamaAlModelo(t *testing.T) {
	llm := &fakeLLM{result: &dto.ReorderSuggestionDTO{}}
	uc := usecase.NewReorderUseCase(&fakeReader{}, llm)

	_, err := uc.Suggest(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, llm.gotInput.ProductName, "el modelo no debe consultarse si el producto no existe")
}

func TestSuggest_ErrorDelModeloSeEnvuelve(t *testing.T) {
	upstream := errors.New("timbre del proveedor")
	llm := &fakeLLM{err: upstream}
	uc := usecase.NewReorderUseCase(&fakeReader{product: fixtureProduct()}, llm)

	_, err := uc.Suggest(context.Background(), "p-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream, "el error del proveedor debe conservarse en la cadena")
	assert.Contains(t, err.Error(), "sugerencia de reorden IA")
}
