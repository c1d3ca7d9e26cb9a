package analytics

import (
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// Source provee snapshots consistentes de las colecciones (lo implementa el
// Store de inventario).
type Source interface {
	Snapshot() ([]*entity.Product, []*entity.Withdrawal)
}

// StatsUseCase arma los reportes del tablero de estadísticas.
type StatsUseCase struct {
	src Source
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(src Source) *StatsUseCase {
	return &StatsUseCase{src: src}
}

// Report calcula las métricas globales y el desglose por producto para la
// ventana opcional.
func (uc *StatsUseCase) Report(window ledger.DateRange) *dto.StatsReportDTO {
	products, withdrawals := uc.src.Snapshot()
	return &dto.StatsReportDTO{
		TotalSalesAmount:    TotalSalesAmount(products, "", window),
		TotalPurchaseAmount: TotalPurchaseAmount(products, "", window),
		TotalStockValue:     TotalStockValue(products, ""),
		TotalWithdrawals:    TotalWithdrawals(withdrawals, window),
		TotalProfit:         TotalProfit(products, withdrawals, window),
		ProfitPerProduct:    ProfitPerProduct(products, window),
	}
}

// Volume calcula el volumen mensual para el producto (opcional) y la ventana.
func (uc *StatsUseCase) Volume(productID string, window ledger.DateRange) []dto.MonthlyVolumeDTO {
	products, _ := uc.src.Snapshot()
	return MonthlyVolume(products, productID, window)
}
