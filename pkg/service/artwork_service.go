package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultArtworkRating = 5
	defaultArtworkStock  = 1
	minRating            = 1
	maxRating            = 5
)

type ArtworkRepository interface {
	Save(ctx context.Context, artwork *models.Artwork) error
	FindByID(ctx context.Context, id string) (*models.Artwork, error)
	FindAll(ctx context.Context) ([]models.Artwork, error)
	FindByCategory(ctx context.Context, category string) ([]models.Artwork, error)
	FindAvailable(ctx context.Context) ([]models.Artwork, error)
	DeleteByID(ctx context.Context, id string) error
}

// ArtworkUpdate carries the fields to change; nil fields are left as stored.
type ArtworkUpdate struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	Rating        *int             `json:"rating"`
	StockQuantity *int             `json:"stock_quantity"`
	Available     *bool            `json:"available"`
	ImageURL      *string          `json:"image_url"`
}

type ArtworkService struct {
	repo   ArtworkRepository
	logger *zap.Logger
}

func NewArtworkService(repo ArtworkRepository, logger *zap.Logger) *ArtworkService {
	return &ArtworkService{repo: repo, logger: logger}
}

// CreateArtwork stores a new catalog entry. Rating defaults to 5, stock to 1
// and availability to true.
func (s *ArtworkService) CreateArtwork(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error) {
	artwork.ID = ""
	artwork.Title = strings.TrimSpace(artwork.Title)
	artwork.Description = strings.TrimSpace(artwork.Description)
	if artwork.Rating == nil {
		r := defaultArtworkRating
		artwork.Rating = &r
	}
	if artwork.StockQuantity == nil {
		q := defaultArtworkStock
		artwork.StockQuantity = &q
	}
	if artwork.Available == nil {
		a := true
		artwork.Available = &a
	}
	if err := validateArtwork(artwork); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, artwork); err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}
	s.logger.Info("Artwork created",
		zap.String("artwork_id", artwork.ID),
		zap.String("title", artwork.Title),
		zap.String("price", artwork.Price.String()))
	return artwork, nil
}

func (s *ArtworkService) GetAllArtworks(ctx context.Context) ([]models.Artwork, error) {
	return s.repo.FindAll(ctx)
}

func (s *ArtworkService) GetArtworkByID(ctx context.Context, id string) (*models.Artwork, error) {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, artworkNotFound(id)
		}
		return nil, err
	}
	return artwork, nil
}

func (s *ArtworkService) GetArtworksByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	return s.repo.FindByCategory(ctx, strings.TrimSpace(category))
}

func (s *ArtworkService) GetAvailableArtworks(ctx context.Context) ([]models.Artwork, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *ArtworkService) UpdateArtwork(ctx context.Context, id string, upd ArtworkUpdate) (*models.Artwork, error) {
	artwork, err := s.GetArtworkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		artwork.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		artwork.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Category != nil {
		artwork.Category = *upd.Category
	}
	if upd.Price != nil {
		artwork.Price = upd.Price
	}
	if upd.Rating != nil {
		artwork.Rating = upd.Rating
	}
	if upd.StockQuantity != nil {
		artwork.StockQuantity = upd.StockQuantity
	}
	if upd.Available != nil {
		artwork.Available = upd.Available
	}
	if upd.ImageURL != nil {
		artwork.ImageURL = *upd.ImageURL
	}
	if err := validateArtwork(artwork); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, artwork); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, artworkNotFound(id)
		}
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}
	s.logger.Info("Artwork updated", zap.String("artwork_id", id))
	return artwork, nil
}

func (s *ArtworkService) DeleteArtwork(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return artworkNotFound(id)
		}
		return fmt.Errorf("failed to delete artwork: %w", err)
	}
	s.logger.Info("Artwork deleted", zap.String("artwork_id", id))
	return nil
}

func validateArtwork(a *models.Artwork) error {
	if a.Title == "" {
		return ErrTitleRequired
	}
	if a.Price == nil || !a.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if a.Rating != nil && (*a.Rating < minRating || *a.Rating > maxRating) {
		return ErrInvalidRating
	}
	if a.StockQuantity != nil && *a.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

func artworkNotFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Artwork not found with id: %s", id)}
}
