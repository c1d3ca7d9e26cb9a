package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/ports"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// ProductReader acceso de solo lectura al inventario (lo implementa el Store).
type ProductReader interface {
	GetProduct(productID string) (*entity.Product, error)
}

// ReorderUseCase orquesta la sugerencia de cantidad de reorden asistida por
// IA. Solo lee: una falla del modelo jamás toca el estado del inventario.
// Aplica un timeout de 10 segundos por llamada al LLM.
type ReorderUseCase struct {
	products ProductReader
	llm      ports.LLMService
}

// NewReorderUseCase construye el caso de uso inyectando el lector y el puerto LLM.
func NewReorderUseCase(products ProductReader, llm ports.LLMService) *ReorderUseCase {
	return &ReorderUseCase{products: products, llm: llm}
}

// Suggest arma el resumen textual del historial del producto y delega al LLM.
func (uc *ReorderUseCase) Suggest(ctx context.Context, productID string) (*dto.ReorderSuggestionDTO, error) {
	product, err := uc.products.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	input := dto.ReorderSuggestionInput{
		ProductName:       product.Name,
		PastSalesData:     summarize(product.Transactions, entity.TransactionTypeSale),
		PastPurchaseData:  summarize(product.Transactions, entity.TransactionTypePurchase),
		CurrentStockLevel: product.Stock,
	}

	// Las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.llm.SuggestReorderQuantity(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("sugerencia de reorden IA: %w", err)
	}
	return result, nil
}

// summarize produce las líneas legibles que consume el modelo, o el literal
// "No sales data" / "No purchase data" si no hay historial de ese tipo.
func summarize(txns []entity.Transaction, txType string) string {
	var parts []string
	for _, t := range txns {
		if t.Type != txType {
			continue
		}
		verb := "Sold"
		if txType == entity.TransactionTypePurchase {
			verb = "Purchased"
		}
		parts = append(parts, fmt.Sprintf("%s %d at $%s on %s",
			verb, t.Quantity, t.PricePerUnit.StringFixed(2), t.Date.Format("2006-01-02")))
	}
	if len(parts) == 0 {
		if txType == entity.TransactionTypeSale {
			return "No sales data"
		}
		return "No purchase data"
	}
	return strings.Join(parts, ", ")
}
