package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gatera900/bite-backend/pkg/db"
	"github.com/gatera900/bite-backend/pkg/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	return conn
}

func TestGormRepositoryCreateRoundTripsItems(t *testing.T) {
	t.Parallel()

	repo := NewGormRepository(openTestDB(t))
	ctx := context.Background()

	items := []models.OrderItem{
		{MenuItemID: 1, Name: "Garden Fresh Salad", Price: 14, Quantity: 2, Customizations: "no onions"},
		{MenuItemID: 4, Name: "Farm Apple Pie", Price: 8, Quantity: 1},
	}
	created, err := repo.Create(ctx, models.Order{Total: 36, Items: items})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.Nil(t, created.CompletedAt)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, items, fetched.Items)
}

func TestGormRepositoryUpdateStatusStampsCompletionOnce(t *testing.T) {
	t.Parallel()

	repo := NewGormRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Order{Total: 18})
	require.NoError(t, err)

	completed, err := repo.UpdateStatus(ctx, created.ID, models.OrderStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	first := *completed.CompletedAt

	// Cycling away and back keeps the original timestamp.
	_, err = repo.UpdateStatus(ctx, created.ID, models.OrderStatusPreparing)
	require.NoError(t, err)

	again, err := repo.UpdateStatus(ctx, created.ID, models.OrderStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, again.CompletedAt.Equal(first))
}

func TestGormRepositoryGetMissing(t *testing.T) {
	t.Parallel()

	repo := NewGormRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormRepositoryListByUser(t *testing.T) {
	t.Parallel()

	repo := NewGormRepository(openTestDB(t))
	ctx := context.Background()

	userID := 7
	_, err := repo.Create(ctx, models.Order{UserID: &userID, Total: 14})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Order{Total: 9})
	require.NoError(t, err)

	mine, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, float64(14), mine[0].Total)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
