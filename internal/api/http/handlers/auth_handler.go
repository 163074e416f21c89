package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-complaint-service/internal/api/dto"
	"github.com/spec-kit/rental-complaint-service/internal/auth"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
	"github.com/spec-kit/rental-complaint-service/internal/service"
	apperrors "github.com/spec-kit/rental-complaint-service/pkg/util"
)

// AuthHandler exposes signup, login and the tenant approval endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message": "User registered successfully",
			"user":    dto.NewUserResponse(user),
		},
	})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message": "Signup successful. Awaiting landlord approval.",
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ListUnapproved handles GET /auth/unapproved.
func (h *AuthHandler) ListUnapproved(c *fiber.Ctx) error {
	tenants, err := h.auth.ListUnapprovedTenants(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.UserResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, dto.NewUserResponse(&tenants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Approve handles PUT /auth/approve/:id.
func (h *AuthHandler) Approve(c *fiber.Ctx) error {
	tenantID, err := parseIDParam(c, "Tenant")
	if err != nil {
		return err
	}
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.auth.ApproveTenant(c.Context(), principal.User.ID, tenantID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message": "Tenant approved successfully",
			"user":    dto.NewUserResponse(user),
		},
	})
}

// Reject handles DELETE /auth/reject/:id.
func (h *AuthHandler) Reject(c *fiber.Ctx) error {
	tenantID, err := parseIDParam(c, "Tenant")
	if err != nil {
		return err
	}
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.auth.RejectTenant(c.Context(), principal.User.ID, tenantID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message": "Tenant rejected and removed successfully",
		},
	})
}

// parseIDParam validates the :id path segment as a UUID so malformed ids are
// reported as not-found without reaching the store.
func parseIDParam(c *fiber.Ctx, resource string) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewNotFound(resource, nil)
	}
	return id, nil
}
