package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// Claves fijas del blob store. Cada una guarda su colección completa en JSON
// y se reescribe entera en cada guardado.
const (
	keyProducts    = "stockflow.products"
	keyWithdrawals = "stockflow.withdrawals"
)

// SnapshotRepository adaptador de persistencia clave-valor sobre SQLite:
// una sola tabla blobs(key, value) con el snapshot JSON de cada colección.
type SnapshotRepository struct {
	db *sql.DB
}

// Open abre (o crea) el archivo SQLite y prepara la tabla de blobs.
// path ":memory:" sirve para tests.
func Open(path string) (*SnapshotRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tabla blobs: %w", err)
	}
	return &SnapshotRepository{db: db}, nil
}

// Close cierra la base de datos.
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}

// LoadProducts carga la colección de productos. Clave ausente o blob corrupto
// devuelven domain.ErrNotFound para que el Store aplique su fallback.
func (r *SnapshotRepository) LoadProducts() ([]*entity.Product, error) {
	raw, err := r.loadBlob(keyProducts)
	if err != nil {
		return nil, err
	}
	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("blob de productos corrupto: %v: %w", err, domain.ErrNotFound)
	}
	return products, nil
}

// SaveProducts reescribe la clave de productos con la colección completa.
func (r *SnapshotRepository) SaveProducts(products []*entity.Product) error {
	return r.saveBlob(keyProducts, products)
}

// LoadWithdrawals carga la colección de retiros.
func (r *SnapshotRepository) LoadWithdrawals() ([]*entity.Withdrawal, error) {
	raw, err := r.loadBlob(keyWithdrawals)
	if err != nil {
		return nil, err
	}
	var withdrawals []*entity.Withdrawal
	if err := json.Unmarshal(raw, &withdrawals); err != nil {
		return nil, fmt.Errorf("blob de retiros corrupto: %v: %w", err, domain.ErrNotFound)
	}
	return withdrawals, nil
}

// SaveWithdrawals reescribe la clave de retiros con la colección completa.
func (r *SnapshotRepository) SaveWithdrawals(withdrawals []*entity.Withdrawal) error {
	return r.saveBlob(keyWithdrawals, withdrawals)
}

func (r *SnapshotRepository) loadBlob(key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("clave %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("leer blob %s: %w", key, err)
	}
	return value, nil
}

func (r *SnapshotRepository) saveBlob(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar blob %s: %w", key, err)
	}
	if _, err := r.db.Exec(
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, raw,
	); err != nil {
		return fmt.Errorf("guardar blob %s: %w", key, err)
	}
	return nil
}
