package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-complaint-service/internal/domain"
	apperrors "github.com/spec-kit/rental-complaint-service/pkg/util"
)

// RequireRole is the declarative authorization policy: routes declare the role
// they need at registration time instead of checking it inside each handler.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden("Access denied")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is attached, any role.
func RequireAuthenticated() fiber.Handler {
	return RequireRole()
}
