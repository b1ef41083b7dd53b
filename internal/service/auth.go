package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/guard"
	"github.com/ashkanani/agency/internal/store"
)

// AuthService handles console sign-in.
type AuthService struct {
	users   store.UserStore
	jwtMgr  *auth.JWTManager
	limiter *guard.RateLimiter
}

// NewAuthService creates a new AuthService.
func NewAuthService(users store.UserStore, jwtMgr *auth.JWTManager, limiter *guard.RateLimiter) *AuthService {
	return &AuthService{users: users, jwtMgr: jwtMgr, limiter: limiter}
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned on successful login.
type AuthResult struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login verifies credentials and issues a token. Attempts are throttled
// per email so a stolen address cannot be brute-forced.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.Password == "" {
		return nil, domain.ErrValidation("password is required")
	}

	if s.limiter != nil && !s.limiter.Allow(input.Email) {
		return nil, domain.ErrAccountLocked("too many login attempts, try again later")
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	token, err := s.jwtMgr.GenerateToken(user)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token: token,
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
