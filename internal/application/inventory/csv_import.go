package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// ImportHeader encabezado exacto (sensible a mayúsculas y al orden) que debe
// traer la primera línea del CSV de importación.
const ImportHeader = "ProductName,Type,Quantity,PricePerUnit,Date"

// importNewProductThreshold umbral asignado a productos descubiertos durante
// la importación (valor heredado del producto, no configurable).
const importNewProductThreshold = 10

var lineBreakRe = regexp.MustCompile(`\r?\n`)

// ImportTransactionsCSV valida y aplica un lote de transacciones de forma
// atómica: todas las filas se aplican sobre una copia de trabajo y la
// colección real solo se reemplaza si el archivo completo es válido. La
// primera violación aborta la importación entera citando la fila (1-indexada
// dentro del archivo).
//
// Los nombres de producto se comparan con case folding Unicode; los nombres
// sin coincidencia crean un producto nuevo (stock 0, umbral 10) antes de
// aplicar la fila. Las ventas validan contra el stock acumulado dentro de la
// propia importación, no solo contra el valor previo.
//
// Devuelve la cantidad de filas importadas.
func (s *Store) ImportTransactionsCSV(raw string) (int, error) {
	lines := lineBreakRe.Split(raw, -1)
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if len(lines) < 2 {
		return 0, fmt.Errorf("el archivo debe tener un encabezado y al menos una fila de datos: %w", domain.ErrFormat)
	}
	if lines[0] != ImportHeader {
		return 0, fmt.Errorf("encabezado inválido, se esperaba %q: %w", ImportHeader, domain.ErrFormat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copia de trabajo: las filas mutan este conjunto; el swap final es la
	// única escritura sobre el estado real.
	working := cloneProducts(s.products)
	byFoldedName := make(map[string]*entity.Product, len(working))
	for _, p := range working {
		byFoldedName[ledger.FoldName(p.Name)] = p
	}

	imported := 0
	for i, line := range lines[1:] {
		if line == "" {
			continue
		}
		row := i + 2 // fila 1-indexada dentro del archivo (el encabezado es la 1)

		fields := strings.Split(line, ",")
		if len(fields) != 5 {
			return 0, fmt.Errorf("fila %d: se esperaban 5 columnas y hay %d: %w", row, len(fields), domain.ErrFormat)
		}
		name := unquoteField(strings.TrimSpace(fields[0]))
		txType := strings.TrimSpace(fields[1])
		qtyStr := strings.TrimSpace(fields[2])
		priceStr := strings.TrimSpace(fields[3])
		dateStr := unquoteField(strings.TrimSpace(fields[4]))

		if !entity.ValidTransactionType(txType) {
			return 0, fmt.Errorf("fila %d: Type debe ser 'sale' o 'purchase', no %q: %w", row, txType, domain.ErrFormat)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			return 0, fmt.Errorf("fila %d: Quantity %q debe ser un entero mayor que cero: %w", row, qtyStr, domain.ErrFormat)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			return 0, fmt.Errorf("fila %d: PricePerUnit %q debe ser un decimal no negativo: %w", row, priceStr, domain.ErrFormat)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			// Segundo intento: timestamp completo como el que genera el export,
			// para que un archivo exportado pueda reimportarse.
			date, err = time.Parse(exportDateLayout, dateStr)
		}
		if err != nil {
			return 0, fmt.Errorf("fila %d: Date %q debe ser una fecha válida YYYY-MM-DD: %w", row, dateStr, domain.ErrFormat)
		}

		product, ok := byFoldedName[ledger.FoldName(name)]
		if !ok {
			product = &entity.Product{
				ID:                uuid.New().String(),
				Name:              name,
				Stock:             0,
				LowStockThreshold: importNewProductThreshold,
				Transactions:      []entity.Transaction{},
			}
			working = append(working, product)
			byFoldedName[ledger.FoldName(name)] = product
		}

		if txType == entity.TransactionTypeSale && qty > product.Stock {
			return 0, fmt.Errorf("fila %d: stock insuficiente para %q (disponible %d, requerido %d): %w",
				row, product.Name, product.Stock, qty, domain.ErrInsufficientStock)
		}

		product.Transactions = append(product.Transactions, entity.Transaction{
			ID:           uuid.New().String(),
			Type:         txType,
			Quantity:     qty,
			PricePerUnit: price,
			Date:         date,
		})
		if txType == entity.TransactionTypePurchase {
			product.Stock += qty
		} else {
			product.Stock -= qty
		}
		imported++
	}

	s.products = working
	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:    "import.applied",
		Message: fmt.Sprintf("%d transacciones importadas", imported),
	})
	return imported, nil
}

// unquoteField deshace el entrecomillado que aplica el export al nombre del
// producto, para que exportar y reimportar reproduzca los mismos nombres.
// Un nombre sin comillas pasa intacto.
func unquoteField(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}
