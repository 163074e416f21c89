package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rental-complaint-service/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence. The tenant reference
// is set once at insert and never updated.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Complaint, error)
	ListAllWithTenant(ctx context.Context) ([]domain.ComplaintWithTenant, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (tenant_id, property_name, issue, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		complaint.TenantID,
		complaint.PropertyName,
		complaint.Issue,
		complaint.Status,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	const query = `
        SELECT id, tenant_id, property_name, issue, status, created_at, updated_at
        FROM complaints WHERE id=$1`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.TenantID,
		&complaint.PropertyName,
		&complaint.Issue,
		&complaint.Status,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	const query = `
        UPDATE complaints SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, tenant_id, property_name, issue, status, created_at, updated_at`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&complaint.ID,
		&complaint.TenantID,
		&complaint.PropertyName,
		&complaint.Issue,
		&complaint.Status,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Complaint, error) {
	const query = `
        SELECT id, tenant_id, property_name, issue, status, created_at, updated_at
        FROM complaints WHERE tenant_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []domain.Complaint{}
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.TenantID,
			&complaint.PropertyName,
			&complaint.Issue,
			&complaint.Status,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}

func (r *complaintRepository) ListAllWithTenant(ctx context.Context) ([]domain.ComplaintWithTenant, error) {
	const query = `
        SELECT c.id, c.tenant_id, c.property_name, c.issue, c.status, c.created_at, c.updated_at,
               u.name, u.email
        FROM complaints c
        JOIN users u ON u.id = c.tenant_id
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []domain.ComplaintWithTenant{}
	for rows.Next() {
		var item domain.ComplaintWithTenant
		if err := rows.Scan(
			&item.ID,
			&item.TenantID,
			&item.PropertyName,
			&item.Issue,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.TenantName,
			&item.TenantEmail,
		); err != nil {
			return nil, err
		}
		complaints = append(complaints, item)
	}
	return complaints, rows.Err()
}
