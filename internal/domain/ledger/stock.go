package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// RecomputeStock deriva el stock desde el historial completo (servicio de
// dominio). initialOffset cubre productos creados con stock inicial pero sin
// transacción semilla. El valor incremental mantenido por el Store debe
// coincidir siempre con este cálculo.
func RecomputeStock(initialOffset int, txns []entity.Transaction) int {
	stock := initialOffset
	for _, t := range txns {
		switch t.Type {
		case entity.TransactionTypePurchase:
			stock += t.Quantity
		case entity.TransactionTypeSale:
			stock -= t.Quantity
		}
	}
	return stock
}

// LastPurchasePrice devuelve el precio unitario de la compra más reciente
// del producto (por fecha, empates resueltos por orden de inserción), o cero
// si no hay compras. No se filtra por ventana de fechas: la valoración del
// stock siempre usa la última compra de todo el historial.
func LastPurchasePrice(p *entity.Product) decimal.Decimal {
	price := decimal.Zero
	found := false
	var latest entity.Transaction
	for _, t := range p.Transactions {
		if t.Type != entity.TransactionTypePurchase {
			continue
		}
		if !found || t.Date.After(latest.Date) {
			latest = t
			price = t.PricePerUnit
			found = true
		}
	}
	return price
}

// StockValue valoración del inventario actual: stock * última compra.
func StockValue(p *entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(p.Stock)).Mul(LastPurchasePrice(p))
}

var nameFolder = cases.Fold()

// FoldName normaliza un nombre de producto para comparación sin distinguir
// mayúsculas (case folding Unicode, no solo ASCII).
func FoldName(name string) string {
	return nameFolder.String(name)
}
