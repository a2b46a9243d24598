package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/security"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs and checks access tokens for an account email.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
	ValidateToken(token string) (string, error)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// OAuthUser is the profile returned by an external identity provider.
type OAuthUser struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewAuthService(users UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case strings.TrimSpace(req.Name) == "":
		return nil, &ValidationError{Message: "Name is required"}
	case req.Email == "":
		return nil, &ValidationError{Message: "Email is required"}
	case strings.TrimSpace(req.Password) == "":
		return nil, &ValidationError{Message: "Password is required"}
	case len(req.Password) < minPasswordLength:
		return nil, &ValidationError{Message: fmt.Sprintf("Password must be at least %d characters", minPasswordLength)}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: &hashed,
		Provider: models.ProviderLocal,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return s.respond(user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, &ValidationError{Message: "Password is required"}
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == nil {
		return nil, ErrGoogleAccount
	}
	if !security.CheckPassword(*user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

// LoginOAuth signs in a user authenticated by Google, creating the account on
// first sight. An existing local account with the same email is linked.
func (s *AuthService) LoginOAuth(ctx context.Context, profile OAuthUser) (*LoginResponse, error) {
	if profile.Email == "" {
		return nil, &ValidationError{Message: "Email not provided by OAuth provider"}
	}

	user, err := s.users.FindByProvider(ctx, models.ProviderGoogle, profile.ID)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.users.FindByEmail(ctx, profile.Email)
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user = &models.User{
			Name:       profile.Name,
			Email:      profile.Email,
			Provider:   models.ProviderGoogle,
			ProviderID: profile.ID,
			Picture:    profile.Picture,
		}
	case err != nil:
		return nil, err
	default:
		if profile.Name != "" {
			user.Name = profile.Name
		}
		user.Picture = profile.Picture
		if user.ProviderID == "" {
			user.ProviderID = profile.ID
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save oauth user: %w", err)
	}

	s.logger.Info("OAuth login", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return s.respond(user)
}

// CurrentUser resolves a bearer token to its account.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*LoginResponse, error) {
	if token == "" {
		return nil, &UnauthorizedError{Message: "Invalid or missing token"}
	}
	email, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, &UnauthorizedError{Message: "Invalid or missing token"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &UnauthorizedError{Message: "User not found"}
		}
		return nil, err
	}
	return &LoginResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

func (s *AuthService) respond(user *models.User) (*LoginResponse, error) {
	token, err := s.tokens.GenerateToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}
