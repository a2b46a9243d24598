package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"go.uber.org/zap"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	FindAll(ctx context.Context) ([]models.Testimonial, error)
	FindByApproved(ctx context.Context, approved bool) ([]models.Testimonial, error)
	Approve(ctx context.Context, id string) (*models.Testimonial, error)
	DeleteByID(ctx context.Context, id string) error
}

// TestimonialService moderates customer testimonials. Submissions start
// unapproved and only approved ones are public.
type TestimonialService struct {
	repo   TestimonialRepository
	logger *zap.Logger
}

func NewTestimonialService(repo TestimonialRepository, logger *zap.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

func (s *TestimonialService) Submit(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Message = strings.TrimSpace(t.Message)
	switch {
	case t.Name == "":
		return nil, ErrNameRequired
	case t.Message == "":
		return nil, ErrMessageRequired
	case t.Rating == 0:
		t.Rating = maxRating
	case t.Rating < minRating || t.Rating > maxRating:
		return nil, ErrInvalidRating
	}
	t.Approved = false

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to submit testimonial: %w", err)
	}
	s.logger.Info("Testimonial submitted", zap.String("testimonial_id", t.ID), zap.Int("rating", t.Rating))
	return t, nil
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.FindByApproved(ctx, true)
}

func (s *TestimonialService) ListPending(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.FindByApproved(ctx, false)
}

func (s *TestimonialService) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.FindAll(ctx)
}

func (s *TestimonialService) Approve(ctx context.Context, id string) (*models.Testimonial, error) {
	t, err := s.repo.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, testimonialNotFound(id)
		}
		return nil, err
	}
	s.logger.Info("Testimonial approved", zap.String("testimonial_id", id))
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return testimonialNotFound(id)
		}
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	s.logger.Info("Testimonial deleted", zap.String("testimonial_id", id))
	return nil
}

func testimonialNotFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Testimonial not found with id: %s", id)}
}
