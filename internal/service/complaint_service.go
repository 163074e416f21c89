package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/rental-complaint-service/internal/config"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
	"github.com/spec-kit/rental-complaint-service/internal/events"
	"github.com/spec-kit/rental-complaint-service/internal/repository"
	apperrors "github.com/spec-kit/rental-complaint-service/pkg/util"
)

// ComplaintService coordinates complaint workflows.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
	tenantOnly bool
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Dispatcher    events.Dispatcher
}

// NewComplaintService constructs the service.
func NewComplaintService(cfg config.ComplaintsConfig, deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		dispatcher: deps.Dispatcher,
		tenantOnly: cfg.TenantOnly,
	}
}

// Create files a complaint owned by the caller with status Pending. By default
// any authenticated caller may create; the tenant-only policy switch restricts
// this to tenant accounts.
func (s *ComplaintService) Create(ctx context.Context, creator *domain.User, propertyName, issue string) (*domain.Complaint, error) {
	if s.tenantOnly && creator.Role != domain.RoleTenant {
		return nil, apperrors.NewForbidden("only tenants can submit complaints")
	}

	propertyName = strings.TrimSpace(propertyName)
	issue = strings.TrimSpace(issue)
	if propertyName == "" || issue == "" {
		return nil, apperrors.NewValidationError("propertyName and issue required", nil)
	}

	complaint := &domain.Complaint{
		TenantID:     creator.ID,
		PropertyName: propertyName,
		Issue:        issue,
		Status:       domain.ComplaintStatusPending,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventComplaintCreated,
		SubjectID: complaint.ID,
		Actor:     events.Actor{UserID: creator.ID, Role: creator.Role},
		Payload: events.ComplaintCreatedPayload{
			TenantID:     complaint.TenantID,
			PropertyName: complaint.PropertyName,
		},
	})
	return complaint, nil
}

// ListMine returns the caller's complaints, newest first.
func (s *ComplaintService) ListMine(ctx context.Context, tenantID string) ([]domain.Complaint, error) {
	return s.complaints.ListByTenant(ctx, tenantID)
}

// ListAll returns every complaint with the owning tenant's name and email
// joined in, newest first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.ComplaintWithTenant, error) {
	return s.complaints.ListAllWithTenant(ctx)
}

// UpdateStatus sets a complaint's status. The new status must be one of the
// known enum values; transitions are otherwise unordered.
func (s *ComplaintService) UpdateStatus(ctx context.Context, actor *domain.User, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status must be Pending, In Progress or Resolved", nil)
	}

	existing, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Complaint", nil)
		}
		return nil, err
	}

	updated, err := s.complaints.UpdateStatus(ctx, complaintID, status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Complaint", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventComplaintStatusChanged,
		SubjectID: updated.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: existing.Status,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = newEventID()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func newEventID() string {
	return uuid.NewString()
}
