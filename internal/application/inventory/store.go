package inventory

import (
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

// Notifier puerto de salida para las notificaciones de cambio.
// El hub WebSocket lo implementa; en tests se usa un fake.
type Notifier interface {
	Publish(event dto.ChangeEventDTO)
}

// Store es el motor de mutaciones: dueño único de las colecciones en memoria
// de productos y retiros. Toda mutación pasa por sus métodos, que validan
// invariantes (stock nunca negativo, IDs únicos, historial append-only),
// sincronizan el snapshot persistido y publican exactamente un evento de
// cambio por operación exitosa.
//
// El mutex protege las colecciones: Fiber atiende peticiones en paralelo y
// aquí no hay base de datos que serialice por nosotros.
type Store struct {
	mu          sync.Mutex
	products    []*entity.Product
	withdrawals []*entity.Withdrawal

	repo     repository.SnapshotRepository
	notifier Notifier
	log      *logger.Logger
}

// NewStore construye el Store. notifier puede ser nil (sin difusión).
func NewStore(repo repository.SnapshotRepository, notifier Notifier, log *logger.Logger) *Store {
	return &Store{repo: repo, notifier: notifier, log: log}
}

// Load carga el estado persistido. Clave de productos ausente o corrupta →
// dataset semilla de demostración; retiros ausentes → colección vacía.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.repo.LoadProducts()
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot de productos no disponible, usando dataset semilla")
		products = seedProducts()
	}
	s.products = products

	withdrawals, err := s.repo.LoadWithdrawals()
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot de retiros no disponible, iniciando vacío")
		withdrawals = []*entity.Withdrawal{}
	}
	s.withdrawals = withdrawals

	s.log.Info().
		Int("products", len(s.products)).
		Int("withdrawals", len(s.withdrawals)).
		Msg("estado cargado")
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// CreateProduct crea un producto con ID nuevo. Si InitialStock > 0 y
// PurchasePrice viene y es >= 0, sintetiza una compra semilla fechada ahora
// por esa cantidad y precio, de modo que el historial justifique el stock.
func (s *Store) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if utf8.RuneCountInString(in.Name) < 3 {
		return nil, fmt.Errorf("el nombre debe tener al menos 3 caracteres: %w", domain.ErrInvalidInput)
	}
	if in.InitialStock < 0 {
		return nil, fmt.Errorf("el stock inicial no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if in.LowStockThreshold < 0 {
		return nil, fmt.Errorf("el umbral de stock bajo no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Stock:             in.InitialStock,
		LowStockThreshold: in.LowStockThreshold,
		Transactions:      []entity.Transaction{},
	}
	if in.InitialStock > 0 && in.PurchasePrice != nil && !in.PurchasePrice.IsNegative() {
		product.Transactions = append(product.Transactions, entity.Transaction{
			ID:           uuid.New().String(),
			Type:         entity.TransactionTypePurchase,
			Quantity:     in.InitialStock,
			PricePerUnit: *in.PurchasePrice,
			Date:         time.Now(),
		})
	}
	s.products = append(s.products, product)

	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:      "product.created",
		ProductID: product.ID,
		Message:   fmt.Sprintf("producto %q agregado al inventario", product.Name),
	})
	return toProductResponse(product), nil
}

// EditProduct actualiza nombre y umbral. El stock y el historial no se tocan.
func (s *Store) EditProduct(productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if utf8.RuneCountInString(in.Name) < 3 {
		return nil, fmt.Errorf("el nombre debe tener al menos 3 caracteres: %w", domain.ErrInvalidInput)
	}
	if in.LowStockThreshold < 0 {
		return nil, fmt.Errorf("el umbral de stock bajo no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.findLocked(productID)
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	product.Name = in.Name
	product.LowStockThreshold = in.LowStockThreshold

	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:      "product.updated",
		ProductID: product.ID,
		Message:   fmt.Sprintf("producto %q actualizado", product.Name),
	})
	return toProductResponse(product), nil
}

// DeleteProduct elimina el producto y todo su historial de transacciones.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.products {
		if p.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	name := s.products[idx].Name
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:      "product.deleted",
		ProductID: productID,
		Message:   fmt.Sprintf("producto %q eliminado", name),
	})
	return nil
}

// RecordTransaction registra una compra o venta. El append al historial y el
// ajuste del stock ocurren juntos bajo el lock: o ambos o ninguno. Una venta
// que dejaría el stock negativo falla sin tocar el estado.
func (s *Store) RecordTransaction(productID string, in dto.RecordTransactionRequest) (*dto.ProductResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, fmt.Errorf("tipo de transacción %q inválido: %w", in.Type, domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("la cantidad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if in.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("el precio unitario no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.findLocked(productID)
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	if in.Type == entity.TransactionTypeSale && in.Quantity > product.Stock {
		return nil, fmt.Errorf("stock insuficiente para %q (disponible %d, requerido %d): %w",
			product.Name, product.Stock, in.Quantity, domain.ErrInsufficientStock)
	}

	product.Transactions = append(product.Transactions, entity.Transaction{
		ID:           uuid.New().String(),
		Type:         in.Type,
		Quantity:     in.Quantity,
		PricePerUnit: in.PricePerUnit,
		Date:         time.Now(),
	})
	if in.Type == entity.TransactionTypePurchase {
		product.Stock += in.Quantity
	} else {
		product.Stock -= in.Quantity
	}

	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:      "transaction.recorded",
		ProductID: product.ID,
		Message:   fmt.Sprintf("nueva %s registrada para %q", transactionLabel(in.Type), product.Name),
	})
	return toProductResponse(product), nil
}

// RecordWithdrawal registra un retiro de efectivo (append-only).
func (s *Store) RecordWithdrawal(in dto.CreateWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("el monto del retiro debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := &entity.Withdrawal{
		ID:     uuid.New().String(),
		Amount: in.Amount,
		Notes:  in.Notes,
		Date:   time.Now(),
	}
	s.withdrawals = append(s.withdrawals, w)

	s.persistLocked()
	s.publish(dto.ChangeEventDTO{
		Kind:    "withdrawal.recorded",
		Message: fmt.Sprintf("retiro de %s registrado", in.Amount.StringFixed(2)),
	})
	return toWithdrawalResponse(w), nil
}

// ── Lecturas (snapshots) ──────────────────────────────────────────────────────

// Products devuelve una copia profunda de la colección de productos.
func (s *Store) Products() []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.products)
}

// GetProduct devuelve una copia del producto o domain.ErrNotFound.
func (s *Store) GetProduct(productID string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.findLocked(productID); p != nil {
		return p.Clone(), nil
	}
	return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
}

// Withdrawals devuelve una copia de la colección de retiros.
func (s *Store) Withdrawals() []*entity.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Withdrawal, len(s.withdrawals))
	for i, w := range s.withdrawals {
		cp := *w
		out[i] = &cp
	}
	return out
}

// Snapshot devuelve copias de ambas colecciones en un mismo instante,
// para los reportes y el export.
func (s *Store) Snapshot() ([]*entity.Product, []*entity.Withdrawal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := cloneProducts(s.products)
	withdrawals := make([]*entity.Withdrawal, len(s.withdrawals))
	for i, w := range s.withdrawals {
		cp := *w
		withdrawals[i] = &cp
	}
	return products, withdrawals
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (s *Store) findLocked(productID string) *entity.Product {
	for _, p := range s.products {
		if p.ID == productID {
			return p
		}
	}
	return nil
}

// persistLocked reescribe ambas claves del snapshot. El guardado es best
// effort: un fallo se registra pero no revierte la mutación (ante un crash
// se pierde a lo sumo la última operación).
func (s *Store) persistLocked() {
	if err := s.repo.SaveProducts(s.products); err != nil {
		s.log.Error().Err(err).Msg("guardar snapshot de productos")
	}
	if err := s.repo.SaveWithdrawals(s.withdrawals); err != nil {
		s.log.Error().Err(err).Msg("guardar snapshot de retiros")
	}
}

func (s *Store) publish(event dto.ChangeEventDTO) {
	if s.notifier != nil {
		s.notifier.Publish(event)
	}
}

func cloneProducts(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func transactionLabel(t string) string {
	if t == entity.TransactionTypeSale {
		return "venta"
	}
	return "compra"
}

// ── Mapeo a DTOs ──────────────────────────────────────────────────────────────

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	txns := make([]dto.TransactionResponse, 0, len(p.Transactions))
	for _, t := range p.Transactions {
		txns = append(txns, dto.TransactionResponse{
			ID:           t.ID,
			Type:         t.Type,
			Quantity:     t.Quantity,
			PricePerUnit: t.PricePerUnit,
			Date:         t.Date,
		})
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.LowStock(),
		Transactions:      txns,
	}
}

func toWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	return &dto.WithdrawalResponse{
		ID:     w.ID,
		Amount: w.Amount,
		Notes:  w.Notes,
		Date:   w.Date,
	}
}

// ToProductResponse expone el mapeo para los handlers de lectura.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return toProductResponse(p)
}

// ToWithdrawalResponse expone el mapeo para los handlers de lectura.
func ToWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	return toWithdrawalResponse(w)
}
