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

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación del puerto SubscriptionRepository sobre
// PostgreSQL. La tabla lleva un índice único parcial (tenant_id) WHERE active
// que respalda la invariante de una sola suscripción activa por tenant.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionColumns = `id, tenant_id, plan_name, start_date, end_date, active, created_at, updated_at`

// Create persiste una suscripción; chocar con el índice parcial es ErrConflict.
func (r *SubscriptionRepo) Create(s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, tenant_id, plan_name, start_date, end_date, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TenantID, s.PlanName, s.StartDate, s.EndDate, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetByID obtiene una suscripción por ID; nil si no existe.
func (r *SubscriptionRepo) GetByID(id string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get subscription")
}

// GetActiveByTenant devuelve la suscripción activa del tenant o nil si no hay.
func (r *SubscriptionRepo) GetActiveByTenant(tenantID string) (*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions WHERE tenant_id = $1 AND active`
	return r.scanOne(r.q.QueryRow(context.Background(), query, tenantID), "get active subscription")
}

// ListByTenant historial de suscripciones del tenant, más recientes primero.
func (r *SubscriptionRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(&s.ID, &s.TenantID, &s.PlanName, &s.StartDate, &s.EndDate,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeactivateByTenant apaga toda suscripción activa del tenant.
func (r *SubscriptionRepo) DeactivateByTenant(tenantID string) error {
	query := `
		UPDATE subscriptions SET active = false, updated_at = now()
		WHERE tenant_id = $1 AND active`
	_, err := r.q.Exec(context.Background(), query, tenantID)
	if err != nil {
		return fmt.Errorf("deactivate subscriptions: %w", err)
	}
	return nil
}

// Update persiste los cambios de una suscripción.
func (r *SubscriptionRepo) Update(s *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET plan_name = $2, start_date = $3, end_date = $4, active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.PlanName, s.StartDate, s.EndDate, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepo) scanOne(row pgx.Row, op string) (*entity.Subscription, error) {
	var s entity.Subscription
	err := row.Scan(&s.ID, &s.TenantID, &s.PlanName, &s.StartDate, &s.EndDate,
		&s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
