package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// SnapshotRepository puerto de persistencia del estado completo.
// El contrato es de blob store clave-valor: dos claves fijas, cada una con
// la colección serializada en JSON; cada guardado reescribe la clave entera
// (sin escrituras incrementales).
//
// Load* devuelve domain.ErrNotFound cuando la clave no existe o el blob está
// corrupto; el Store decide el fallback (dataset semilla o colección vacía).
type SnapshotRepository interface {
	LoadProducts() ([]*entity.Product, error)
	SaveProducts(products []*entity.Product) error
	LoadWithdrawals() ([]*entity.Withdrawal, error)
	SaveWithdrawals(withdrawals []*entity.Withdrawal) error
}
