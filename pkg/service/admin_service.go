package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/security"
	"go.uber.org/zap"
)

const RoleAdmin = "ADMIN"

type AdminRepository interface {
	Save(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AdminLoginResponse struct {
	Token   string        `json:"token"`
	Admin   *models.Admin `json:"admin"`
	Message string        `json:"message"`
}

type AdminService struct {
	admins AdminRepository
	tokens TokenIssuer
	logger *zap.Logger
	now    func() time.Time
}

func NewAdminService(admins AdminRepository, tokens TokenIssuer, logger *zap.Logger) *AdminService {
	return &AdminService{admins: admins, tokens: tokens, logger: logger, now: time.Now}
}

func (s *AdminService) CreateAdmin(ctx context.Context, name, email, password string) (*models.Admin, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     RoleAdmin,
		IsActive: true,
	}
	if err := s.admins.Save(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Admin created", zap.String("admin_id", admin.ID), zap.String("email", email))
	return admin, nil
}

// Authenticate checks the credentials of an active admin and stamps the
// login time. Every rejection reports ErrInvalidCredentials.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Admin not found", zap.String("email", email))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive {
		s.logger.Warn("Admin account is inactive", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(admin.Password, password) {
		s.logger.Warn("Admin password mismatch", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	admin.LastLogin = &now
	if err := s.admins.Save(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to record admin login: %w", err)
	}
	return admin, nil
}

func (s *AdminService) Login(ctx context.Context, email, password string) (*AdminLoginResponse, error) {
	admin, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.GenerateToken(admin.Email)
	if err != nil {
		return nil, err
	}
	return &AdminLoginResponse{Token: token, Admin: admin, Message: "Login successful"}, nil
}

// EnsureDefaultAdmin creates the seeded admin account unless it exists.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, seed config.AdminSeed) error {
	if seed.Email == "" || seed.Password == "" {
		return nil
	}

	exists, err := s.admins.ExistsByEmail(ctx, seed.Email)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debug("Default admin present", zap.String("email", seed.Email))
		return nil
	}

	_, err = s.CreateAdmin(ctx, seed.Name, seed.Email, seed.Password)
	return err
}
