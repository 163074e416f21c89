package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-complaint-service/internal/api/dto"
	"github.com/spec-kit/rental-complaint-service/internal/auth"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
	"github.com/spec-kit/rental-complaint-service/internal/service"
	apperrors "github.com/spec-kit/rental-complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Create POST /complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.Create(c.Context(), principal.User, req.PropertyName, req.Issue)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message":   "Complaint submitted",
			"complaint": dto.NewComplaintResponse(complaint),
		},
	})
}

// ListMine GET /complaints/my.
func (h *ComplaintsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	complaints, err := h.service.ListMine(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListAll GET /complaints.
func (h *ComplaintsHandler) ListAll(c *fiber.Ctx) error {
	complaints, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintWithTenantResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintWithTenantResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PUT /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	complaintID, err := parseIDParam(c, "Complaint")
	if err != nil {
		return err
	}
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.UpdateStatus(c.Context(), principal.User, complaintID, domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message":   "Status updated",
			"complaint": dto.NewComplaintResponse(complaint),
		},
	})
}
