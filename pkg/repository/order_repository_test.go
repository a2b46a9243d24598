package repository

import (
	"context"
	"testing"

	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(email string, status models.OrderStatus, total string) *models.Order {
	item := testutil.Item(total, 1)
	item.Subtotal = *item.Price
	return &models.Order{
		CustomerName:  "Customer",
		CustomerEmail: email,
		Items:         []models.OrderItem{item},
		TotalAmount:   decimal.RequireFromString(total),
		Status:        status,
	}
}

func orderIDs(orders []models.Order) []string {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func TestOrderRepository_SaveAndFind(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.Item("10.00", 2)
	a.ArtworkTitle = "Sunset"
	a.Subtotal = decimal.RequireFromString("20.00")
	b := testutil.Item("5.50", 1)
	b.Subtotal = decimal.RequireFromString("5.50")

	order := &models.Order{
		CustomerEmail: "ana@example.com",
		Items:         []models.OrderItem{a, b},
		TotalAmount:   decimal.RequireFromString("25.50"),
		Status:        models.OrderStatusPending,
	}
	require.NoError(t, repo.Save(ctx, order))
	require.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, order.ID, got.Items[0].OrderID)
	assert.Equal(t, "Sunset", got.Items[0].ArtworkTitle)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25.5")), got.TotalAmount.String())
	assert.True(t, got.Items[1].Subtotal.Equal(decimal.RequireFromString("5.5")))
	assert.Equal(t, 2, *got.Items[0].Quantity)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepository_SaveExistingKeepsItems(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	order := newOrder("ana@example.com", models.OrderStatusPending, "12.00")
	require.NoError(t, repo.Save(ctx, order))

	order.Status = models.OrderStatusShipped
	order.Items = nil
	require.NoError(t, repo.Save(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status)
	assert.Len(t, got.Items, 1)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("12")))
}

func TestOrderRepository_Queries(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	o1 := newOrder("ana@example.com", models.OrderStatusPending, "1.00")
	o2 := newOrder("ana@example.com", models.OrderStatusDelivered, "2.00")
	o3 := newOrder("bob@example.com", models.OrderStatusDelivered, "3.00")
	for _, o := range []*models.Order{o1, o2, o3} {
		require.NoError(t, repo.Save(ctx, o))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{o1.ID, o2.ID, o3.ID}, orderIDs(all))
	for _, o := range all {
		assert.Len(t, o.Items, 1)
	}

	byEmail, err := repo.FindByCustomerEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{o1.ID, o2.ID}, orderIDs(byEmail))

	none, err := repo.FindByCustomerEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)

	delivered, err := repo.FindByStatus(ctx, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{o2.ID, o3.ID}, orderIDs(delivered))
}

func TestOrderRepository_ExistsAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := newOrder("ana@example.com", models.OrderStatusPending, "4.00")
	require.NoError(t, repo.Save(ctx, order))

	ok, err := repo.ExistsByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.DeleteByID(ctx, order.ID))

	ok, err = repo.ExistsByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)
}

func TestOrderRepository_SaveAfterDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := newOrder("ana@example.com", models.OrderStatusPending, "4.00")
	require.NoError(t, repo.Save(ctx, order))

	stale, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByID(ctx, order.ID))

	stale.Status = models.OrderStatusCancelled
	err = repo.Save(ctx, stale)
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := repo.ExistsByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderRepository_SaveSameStatusTwice(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	order := newOrder("ana@example.com", models.OrderStatusCancelled, "4.00")
	require.NoError(t, repo.Save(ctx, order))
	require.NoError(t, repo.Save(ctx, order))
	require.NoError(t, repo.Save(ctx, order))
}

func TestOrderRepository_ExactAmounts(t *testing.T) {
	repo := NewOrderRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	large := testutil.Item("1234567890123456.78", 3)
	large.Subtotal = decimal.RequireFromString("3703703670370370.34")
	fine := testutil.Item("0.123456789", 2)
	fine.Subtotal = decimal.RequireFromString("0.246913578")

	order := &models.Order{
		CustomerEmail: "ana@example.com",
		Items:         []models.OrderItem{large, fine},
		TotalAmount:   decimal.RequireFromString("3703703670370370.586913578"),
		Status:        models.OrderStatusPending,
	}
	require.NoError(t, repo.Save(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "1234567890123456.78", got.Items[0].Price.String())
	assert.Equal(t, "3703703670370370.34", got.Items[0].Subtotal.String())
	assert.Equal(t, "0.123456789", got.Items[1].Price.String())
	assert.Equal(t, "0.246913578", got.Items[1].Subtotal.String())
	assert.Equal(t, "3703703670370370.586913578", got.TotalAmount.String())
	assert.True(t, got.Items[0].Subtotal.Add(got.Items[1].Subtotal).Equal(got.TotalAmount))
}
