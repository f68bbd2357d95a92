package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla inventories tiene UNIQUE (branch_id, product_id).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, branch_id, product_id, stock, reorder_point, updated_at`

// Get obtiene la fila (branch, product); nil si no existe.
func (r *InventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories WHERE branch_id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, branchID, productID), "get inventory")
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE); nil si no existe.
// Solo tiene sentido dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories WHERE branch_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, branchID, productID), "get inventory for update")
}

// ListByProductForUpdate bloquea y devuelve las filas del producto en todas las
// sucursales, en el orden de asignación del checkout: nombre de sucursal asc,
// id de fila como desempate.
func (r *InventoryRepo) ListByProductForUpdate(productID string) ([]*entity.Inventory, error) {
	query := `
		SELECT i.id, i.branch_id, i.product_id, i.stock, i.reorder_point, i.updated_at
		FROM inventories i
		JOIN branches b ON b.id = i.branch_id
		WHERE i.product_id = $1
		ORDER BY b.name ASC, i.id ASC
		FOR UPDATE OF i`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory for update: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// Create inserta la fila; la clave (branch, product) repetida es ErrDuplicate.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, branch_id, product_id, stock, reorder_point, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.BranchID, inv.ProductID, inv.Stock, inv.ReorderPoint, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Upsert inserta la fila o no hace nada si ya existe (provisión idempotente).
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, branch_id, product_id, stock, reorder_point, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (branch_id, product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.BranchID, inv.ProductID, inv.Stock, inv.ReorderPoint, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por su ID; nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory by id")
}

// ListByBranch lista el ledger de una sucursal con paginación.
func (r *InventoryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventories WHERE branch_id = $1
		ORDER BY product_id ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// Update persiste stock y reorder point de la fila.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories
		SET stock = $2, reorder_point = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Stock, inv.ReorderPoint, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila del ledger.
func (r *InventoryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.BranchID, &inv.ProductID, &inv.Stock, &inv.ReorderPoint, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

func scanInventories(rows pgx.Rows) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.BranchID, &inv.ProductID, &inv.Stock, &inv.ReorderPoint, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
