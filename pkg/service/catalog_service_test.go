package service

import (
	"context"
	"testing"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestArtworkService_CreateDefaults(t *testing.T) {
	svc := NewArtworkService(repository.NewArtworkRepository(testutil.NewTestDB(t)), zap.NewNop())

	created, err := svc.CreateArtwork(context.Background(), &models.Artwork{
		ID:    "caller-id",
		Title: "  Sunset ",
		Price: price("99.99"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-id", created.ID)
	assert.Equal(t, "Sunset", created.Title)
	assert.Equal(t, 5, *created.Rating)
	assert.Equal(t, 1, *created.StockQuantity)
	assert.True(t, *created.Available)
}

func TestArtworkService_Validation(t *testing.T) {
	svc := NewArtworkService(repository.NewArtworkRepository(testutil.NewTestDB(t)), zap.NewNop())
	zero, negative, tooHigh := 0, -1, 6

	tests := []struct {
		name    string
		artwork models.Artwork
		want    error
	}{
		{"no title", models.Artwork{Price: price("1")}, ErrTitleRequired},
		{"no price", models.Artwork{Title: "A"}, ErrInvalidPrice},
		{"negative price", models.Artwork{Title: "A", Price: price("-3")}, ErrInvalidPrice},
		{"rating zero", models.Artwork{Title: "A", Price: price("1"), Rating: &zero}, ErrInvalidRating},
		{"rating too high", models.Artwork{Title: "A", Price: price("1"), Rating: &tooHigh}, ErrInvalidRating},
		{"negative stock", models.Artwork{Title: "A", Price: price("1"), StockQuantity: &negative}, ErrNegativeStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.artwork
			_, err := svc.CreateArtwork(context.Background(), &a)
			assert.Equal(t, tt.want, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestArtworkService_UpdateAndDelete(t *testing.T) {
	svc := NewArtworkService(repository.NewArtworkRepository(testutil.NewTestDB(t)), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateArtwork(ctx, &models.Artwork{Title: "Sunset", Category: "Painting", Price: price("10")})
	require.NoError(t, err)

	title, stock := "Sunrise", 0
	updated, err := svc.UpdateArtwork(ctx, created.ID, ArtworkUpdate{Title: &title, StockQuantity: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", updated.Title)
	assert.Equal(t, 0, *updated.StockQuantity)
	assert.Equal(t, "Painting", updated.Category)

	blank := " "
	_, err = svc.UpdateArtwork(ctx, created.ID, ArtworkUpdate{Title: &blank})
	assert.Equal(t, ErrTitleRequired, err)

	require.NoError(t, svc.DeleteArtwork(ctx, created.ID))
	err = svc.DeleteArtwork(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	_, err = svc.UpdateArtwork(ctx, created.ID, ArtworkUpdate{Title: &title})
	assert.True(t, IsNotFound(err))
}

func TestTestimonialService(t *testing.T) {
	svc := NewTestimonialService(repository.NewTestimonialRepository(testutil.NewTestDB(t)), zap.NewNop())
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, &models.Testimonial{Name: " Ana ", Message: "Lovely", Approved: true})
	require.NoError(t, err)
	assert.Equal(t, "Ana", submitted.Name)
	assert.Equal(t, 5, submitted.Rating)
	assert.False(t, submitted.Approved)

	public, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.Approve(ctx, submitted.ID)
	require.NoError(t, err)

	public, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	_, err = svc.Approve(ctx, "missing")
	assert.True(t, IsNotFound(err))

	require.NoError(t, svc.Delete(ctx, submitted.ID))
	assert.True(t, IsNotFound(svc.Delete(ctx, submitted.ID)))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTestimonialService_Validation(t *testing.T) {
	svc := NewTestimonialService(repository.NewTestimonialRepository(testutil.NewTestDB(t)), zap.NewNop())

	tests := []struct {
		name string
		in   models.Testimonial
		want error
	}{
		{"no name", models.Testimonial{Message: "Hi"}, ErrNameRequired},
		{"no message", models.Testimonial{Name: "Ana", Message: "  "}, ErrMessageRequired},
		{"rating out of range", models.Testimonial{Name: "Ana", Message: "Hi", Rating: 7}, ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			_, err := svc.Submit(context.Background(), &in)
			assert.Equal(t, tt.want, err)
		})
	}
}
