package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/rental-complaint-service/internal/auth"
	"github.com/spec-kit/rental-complaint-service/internal/config"
	"github.com/spec-kit/rental-complaint-service/internal/domain"
	"github.com/spec-kit/rental-complaint-service/internal/events"
	"github.com/spec-kit/rental-complaint-service/internal/repository"
	apperrors "github.com/spec-kit/rental-complaint-service/pkg/util"
)

// AuthService coordinates signup, login and the tenant approval workflow.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	throttle   *auth.LoginThrottle
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Throttle   *auth.LoginThrottle
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		throttle:   deps.Throttle,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup registers a tenant account awaiting landlord approval. No token is
// issued; the account cannot log in until approved.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.createUser(ctx, name, email, password, domain.RoleTenant, false)
}

// Register creates an account with an explicit role (admin/manual path).
// Landlords are approved on creation; tenants still go through the gate.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be tenant or landlord", nil)
	}
	return s.createUser(ctx, name, email, password, role, role == domain.RoleLandlord)
}

func (s *AuthService) createUser(ctx context.Context, name, email, password string, role domain.Role, approved bool) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("name, email, password required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsApproved:   approved,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an account and issues a signed, time-bounded token.
// Unknown email and wrong password report the same error so the cause is not
// leaked. Unapproved tenants never receive a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	if !s.throttle.Allow(ctx, email) {
		return nil, "", time.Time{}, apperrors.NewTooManyAttempts()
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if user.Role == domain.RoleTenant && !user.IsApproved {
		return nil, "", time.Time{}, apperrors.NewNotApproved()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.throttle.Reset(ctx, email)
	return user, token, exp, nil
}

// ListUnapprovedTenants returns tenants awaiting approval, newest first.
func (s *AuthService) ListUnapprovedTenants(ctx context.Context) ([]domain.User, error) {
	return s.users.ListPendingTenants(ctx)
}

// ApproveTenant marks a tenant as approved. Approving an already approved
// tenant is a state no-op.
func (s *AuthService) ApproveTenant(ctx context.Context, actorID, tenantID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, tenantID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Tenant", nil)
		}
		return nil, err
	}

	user.IsApproved = true
	if err := s.users.Update(ctx, user); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Tenant", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTenantApproved,
		SubjectID: user.ID,
		Actor:     events.Actor{UserID: actorID, Role: domain.RoleLandlord},
		Payload: events.TenantApprovedPayload{
			TenantName:  user.Name,
			TenantEmail: user.Email,
		},
	})
	return user, nil
}

// RejectTenant permanently deletes a tenant account. Destructive and
// irreversible; only tenant accounts may be rejected.
func (s *AuthService) RejectTenant(ctx context.Context, actorID, tenantID string) error {
	user, err := s.users.GetByID(ctx, tenantID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Tenant", nil)
		}
		return err
	}
	if user.Role != domain.RoleTenant {
		return apperrors.NewInvalidRole("Can only reject tenant accounts")
	}

	if err := s.users.Delete(ctx, tenantID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Tenant", nil)
		}
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTenantRejected,
		SubjectID: user.ID,
		Actor:     events.Actor{UserID: actorID, Role: domain.RoleLandlord},
		Payload: events.TenantRejectedPayload{
			TenantEmail: user.Email,
		},
	})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = newEventID()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
