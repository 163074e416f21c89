package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rental-complaint-service/internal/config"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
	"github.com/spec-kit/rental-complaint-service/internal/events"
)

// mockComplaintRepository simulates the complaint store during testing.
type mockComplaintRepository struct {
	CreateFunc            func(ctx context.Context, complaint *domain.Complaint) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Complaint, error)
	UpdateStatusFunc      func(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	ListByTenantFunc      func(ctx context.Context, tenantID string) ([]domain.Complaint, error)
	ListAllWithTenantFunc func(ctx context.Context) ([]domain.ComplaintWithTenant, error)
}

func (m *mockComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, complaint)
	}
	complaint.ID = "complaint-1"
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockComplaintRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Complaint, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) ListAllWithTenant(ctx context.Context) ([]domain.ComplaintWithTenant, error) {
	if m.ListAllWithTenantFunc != nil {
		return m.ListAllWithTenantFunc(ctx)
	}
	return nil, nil
}

func newTestComplaintService(repo *mockComplaintRepository, dispatcher events.Dispatcher, tenantOnly bool) *ComplaintService {
	return NewComplaintService(config.ComplaintsConfig{TenantOnly: tenantOnly}, ComplaintDependencies{
		ComplaintRepo: repo,
		Dispatcher:    dispatcher,
	})
}

func tenantUser() *domain.User {
	return &domain.User{ID: "tenant-1", Role: domain.RoleTenant, IsApproved: true}
}

func landlordUser() *domain.User {
	return &domain.User{ID: "landlord-1", Role: domain.RoleLandlord, IsApproved: true}
}

func TestComplaintService_Create(t *testing.T) {
	t.Run("defaults to pending and sets owner", func(t *testing.T) {
		var created *domain.Complaint
		repo := &mockComplaintRepository{
			CreateFunc: func(_ context.Context, complaint *domain.Complaint) error {
				created = complaint
				complaint.ID = "complaint-1"
				return nil
			},
		}
		dispatcher := &recordingDispatcher{}
		svc := newTestComplaintService(repo, dispatcher, false)

		complaint, err := svc.Create(context.Background(), tenantUser(), "Oak St", "leak")
		require.NoError(t, err)

		assert.Equal(t, domain.ComplaintStatusPending, created.Status)
		assert.Equal(t, "tenant-1", created.TenantID)
		assert.Equal(t, "Oak St", complaint.PropertyName)

		require.Len(t, dispatcher.published, 1)
		assert.Equal(t, events.EventComplaintCreated, dispatcher.published[0].Type)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc := newTestComplaintService(&mockComplaintRepository{}, nil, false)

		_, err := svc.Create(context.Background(), tenantUser(), "", "leak")
		assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))

		_, err = svc.Create(context.Background(), tenantUser(), "Oak St", "   ")
		assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
	})

	t.Run("landlord may create by default", func(t *testing.T) {
		svc := newTestComplaintService(&mockComplaintRepository{}, nil, false)
		complaint, err := svc.Create(context.Background(), landlordUser(), "Oak St", "leak")
		require.NoError(t, err)
		assert.Equal(t, "landlord-1", complaint.TenantID)
	})

	t.Run("tenant-only policy forbids landlords", func(t *testing.T) {
		svc := newTestComplaintService(&mockComplaintRepository{}, nil, true)
		_, err := svc.Create(context.Background(), landlordUser(), "Oak St", "leak")
		assert.Equal(t, "FORBIDDEN", domainCode(t, err))
	})
}

func TestComplaintService_ListMine(t *testing.T) {
	repo := &mockComplaintRepository{
		ListByTenantFunc: func(_ context.Context, tenantID string) ([]domain.Complaint, error) {
			assert.Equal(t, "tenant-1", tenantID)
			return []domain.Complaint{{ID: "c2"}, {ID: "c1"}}, nil
		},
	}
	svc := newTestComplaintService(repo, nil, false)

	complaints, err := svc.ListMine(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, "c2", complaints[0].ID)
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	existing := &domain.Complaint{
		ID:       "complaint-1",
		TenantID: "tenant-1",
		Status:   domain.ComplaintStatusPending,
	}

	t.Run("out-of-enum status rejected before touching the store", func(t *testing.T) {
		getCalled := false
		repo := &mockComplaintRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Complaint, error) {
				getCalled = true
				return existing, nil
			},
		}
		svc := newTestComplaintService(repo, nil, false)

		_, err := svc.UpdateStatus(context.Background(), landlordUser(), "complaint-1", domain.ComplaintStatus("Escalated"))
		assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
		assert.False(t, getCalled)
	})

	t.Run("missing complaint reports not found", func(t *testing.T) {
		svc := newTestComplaintService(&mockComplaintRepository{}, nil, false)
		_, err := svc.UpdateStatus(context.Background(), landlordUser(), "missing", domain.ComplaintStatusResolved)
		assert.Equal(t, "NOT_FOUND", domainCode(t, err))
	})

	t.Run("updates status and publishes transition", func(t *testing.T) {
		dispatcher := &recordingDispatcher{}
		repo := &mockComplaintRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Complaint, error) {
				return existing, nil
			},
			UpdateStatusFunc: func(_ context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
				updated := *existing
				updated.Status = status
				updated.UpdatedAt = time.Now()
				return &updated, nil
			},
		}
		svc := newTestComplaintService(repo, dispatcher, false)

		complaint, err := svc.UpdateStatus(context.Background(), landlordUser(), "complaint-1", domain.ComplaintStatusResolved)
		require.NoError(t, err)
		assert.Equal(t, domain.ComplaintStatusResolved, complaint.Status)

		require.Len(t, dispatcher.published, 1)
		payload, ok := dispatcher.published[0].Payload.(events.ComplaintStatusChangedPayload)
		require.True(t, ok)
		assert.Equal(t, domain.ComplaintStatusPending, payload.OldStatus)
		assert.Equal(t, domain.ComplaintStatusResolved, payload.NewStatus)
	})

	t.Run("any transition order is accepted", func(t *testing.T) {
		resolved := *existing
		resolved.Status = domain.ComplaintStatusResolved
		repo := &mockComplaintRepository{
			GetByIDFunc: func(_ context.Context, _ string) (*domain.Complaint, error) {
				return &resolved, nil
			},
			UpdateStatusFunc: func(_ context.Context, _ string, status domain.ComplaintStatus) (*domain.Complaint, error) {
				updated := resolved
				updated.Status = status
				return &updated, nil
			},
		}
		svc := newTestComplaintService(repo, nil, false)

		complaint, err := svc.UpdateStatus(context.Background(), landlordUser(), "complaint-1", domain.ComplaintStatusPending)
		require.NoError(t, err)
		assert.Equal(t, domain.ComplaintStatusPending, complaint.Status)
	})
}
