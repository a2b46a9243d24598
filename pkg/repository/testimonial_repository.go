package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/artshop/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	t.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		t.ID = ""
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial %s: %w", id, err)
	}
	return &t, nil
}

func (r *TestimonialRepository) FindAll(ctx context.Context) ([]models.Testimonial, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *TestimonialRepository) FindByApproved(ctx context.Context, approved bool) ([]models.Testimonial, error) {
	return r.find(r.db.WithContext(ctx).Where("approved = ?", approved))
}

// Approve marks the testimonial approved and returns the stored row.
func (r *TestimonialRepository) Approve(ctx context.Context, id string) (*models.Testimonial, error) {
	res := r.db.WithContext(ctx).Model(&models.Testimonial{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"approved": true, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to approve testimonial %s: %w", id, res.Error)
	}
	return r.FindByID(ctx, id)
}

func (r *TestimonialRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Testimonial{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete testimonial %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) find(query *gorm.DB) ([]models.Testimonial, error) {
	var list []models.Testimonial
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return list, nil
}
