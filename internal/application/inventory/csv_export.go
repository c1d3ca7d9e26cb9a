package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// ExportHeader encabezado del CSV de exportación.
const ExportHeader = "ProductName,TransactionID,Type,Quantity,PricePerUnit,TotalCost,Date"

// exportDateLayout timestamp completo en UTC con milisegundos, entre
// comillas en el CSV (mismo formato que el export del cliente original).
const exportDateLayout = "2006-01-02T15:04:05.000Z"

// ExportTransactionsCSV serializa las transacciones que coinciden con el
// filtro (producto opcional por ID, ventana de fechas opcional) al formato
// tabular de exportación. Función pura sobre un snapshot.
//
// Devuelve el CSV y la cantidad de filas de datos; cero filas es una señal
// de resultado vacío (texto vacío), no un error.
func ExportTransactionsCSV(products []*entity.Product, productID string, window ledger.DateRange) (string, int) {
	var b strings.Builder
	b.WriteString(ExportHeader)

	rows := 0
	for _, p := range products {
		if productID != "" && p.ID != productID {
			continue
		}
		for _, t := range p.Transactions {
			if !window.Contains(t.Date) {
				continue
			}
			total := decimal.NewFromInt(int64(t.Quantity)).Mul(t.PricePerUnit)
			b.WriteByte('\n')
			b.WriteString(quoteField(p.Name))
			b.WriteByte(',')
			b.WriteString(t.ID)
			b.WriteByte(',')
			b.WriteString(t.Type)
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(t.Quantity))
			b.WriteByte(',')
			b.WriteString(t.PricePerUnit.String())
			b.WriteByte(',')
			b.WriteString(total.String())
			b.WriteByte(',')
			b.WriteString(`"` + t.Date.UTC().Format(exportDateLayout) + `"`)
			rows++
		}
	}
	if rows == 0 {
		return "", 0
	}
	return b.String(), rows
}

// quoteField envuelve el campo en comillas duplicando las internas.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
