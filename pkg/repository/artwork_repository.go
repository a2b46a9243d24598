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

var artworkColumns = []string{
	"title", "description", "category", "price", "rating",
	"stock_quantity", "available", "image_url", "updated_at",
}

type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// Save inserts an artwork without an id and otherwise overwrites the stored
// row. Overwriting an artwork that no longer exists returns ErrNotFound.
func (r *ArtworkRepository) Save(ctx context.Context, artwork *models.Artwork) error {
	if artwork.ID == "" {
		artwork.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(artwork).Error; err != nil {
			artwork.ID = ""
			return fmt.Errorf("failed to create artwork: %w", err)
		}
		return nil
	}

	artwork.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&models.Artwork{}).
		Where("id = ?", artwork.ID).
		Select(artworkColumns).
		Updates(artwork)
	if res.Error != nil {
		return fmt.Errorf("failed to save artwork %s: %w", artwork.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.ExistsByID(ctx, artwork.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&artwork).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artwork %s: %w", id, err)
	}
	return &artwork, nil
}

func (r *ArtworkRepository) FindAll(ctx context.Context) ([]models.Artwork, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByCategory matches the category name ignoring letter case.
func (r *ArtworkRepository) FindByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category))
}

func (r *ArtworkRepository) FindAvailable(ctx context.Context) ([]models.Artwork, error) {
	return r.find(r.db.WithContext(ctx).Where("available = ?", true))
}

func (r *ArtworkRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Artwork{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check artwork %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *ArtworkRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Artwork{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete artwork %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ArtworkRepository) find(query *gorm.DB) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := query.Order("created_at").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}
