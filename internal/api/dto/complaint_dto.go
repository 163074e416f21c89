package dto

import (
	"time"

	"github.com/spec-kit/rental-complaint-service/internal/domain"
)

// CreateComplaintRequest payload for filing a complaint.
type CreateComplaintRequest struct {
	PropertyName string `json:"propertyName"`
	Issue        string `json:"issue"`
}

// UpdateStatusRequest payload for landlord status transitions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ComplaintResponse is the wire view of a complaint.
type ComplaintResponse struct {
	ID           string                 `json:"id"`
	TenantID     string                 `json:"tenant_id"`
	PropertyName string                 `json:"propertyName"`
	Issue        string                 `json:"issue"`
	Status       domain.ComplaintStatus `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ComplaintTenant carries the owner's public identity in landlord listings.
type ComplaintTenant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ComplaintWithTenantResponse is the landlord-facing listing entry.
type ComplaintWithTenantResponse struct {
	ComplaintResponse
	Tenant ComplaintTenant `json:"tenant"`
}

// NewComplaintResponse maps a domain complaint to its wire view.
func NewComplaintResponse(complaint *domain.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:           complaint.ID,
		TenantID:     complaint.TenantID,
		PropertyName: complaint.PropertyName,
		Issue:        complaint.Issue,
		Status:       complaint.Status,
		CreatedAt:    complaint.CreatedAt,
		UpdatedAt:    complaint.UpdatedAt,
	}
}

// NewComplaintWithTenantResponse maps a joined listing entry.
func NewComplaintWithTenantResponse(item *domain.ComplaintWithTenant) ComplaintWithTenantResponse {
	return ComplaintWithTenantResponse{
		ComplaintResponse: NewComplaintResponse(&item.Complaint),
		Tenant: ComplaintTenant{
			Name:  item.TenantName,
			Email: item.TenantEmail,
		},
	}
}
