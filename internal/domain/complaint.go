package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

// Valid reports whether the status is one of the known values.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// Complaint is a maintenance complaint filed by a tenant.
// TenantID is immutable after creation.
type Complaint struct {
	ID           string
	TenantID     string
	PropertyName string
	Issue        string
	Status       ComplaintStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComplaintWithTenant joins a complaint with its owner's public identity
// for landlord-facing listings.
type ComplaintWithTenant struct {
	Complaint
	TenantName  string
	TenantEmail string
}
