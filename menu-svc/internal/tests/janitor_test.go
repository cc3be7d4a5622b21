package tests

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qrmenu-backend/menu-svc/internal/assets"
	"qrmenu-backend/menu-svc/internal/domain"
	"qrmenu-backend/menu-svc/internal/janitor"
	"qrmenu-backend/menu-svc/internal/mocks"
)

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name       string
		event      domain.MenuEvent
		setupMocks func(*mocks.AssetRemover, *mocks.CacheInvalidator)
	}{
		{
			name: "dish cleanup retried",
			event: domain.MenuEvent{
				Type: domain.EventAssetCleanupFailed, Entity: domain.EntityDish,
				RestaurantID: 1, CategoryID: 2, EntityID: 7, ImageURL: "dish_7.jpg",
			},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				a.On("Delete", mock.Anything, "dish_7.jpg", 1, 2, domain.EntityDish, 7).Return(true).Once()
			},
		},
		{
			name: "category cleanup also prunes the directory",
			event: domain.MenuEvent{
				Type: domain.EventAssetCleanupFailed, Entity: domain.EntityCategory,
				RestaurantID: 1, CategoryID: 2, EntityID: 2, ImageURL: "uploads/1/2/category_2.jpg",
			},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				a.On("Delete", mock.Anything, "uploads/1/2/category_2.jpg", 1, 2, domain.EntityCategory, 2).Return(true).Once()
				a.On("RemoveDirIfEmpty", mock.Anything, 1, 2).Return(true).Once()
			},
		},
		{
			name: "failed retry leaves the directory alone",
			event: domain.MenuEvent{
				Type: domain.EventAssetCleanupFailed, Entity: domain.EntityCategory,
				RestaurantID: 1, CategoryID: 2, EntityID: 2, ImageURL: "other.jpg",
			},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				a.On("Delete", mock.Anything, "other.jpg", 1, 2, domain.EntityCategory, 2).Return(false).Once()
			},
		},
		{
			name: "cleanup event without image is dropped",
			event: domain.MenuEvent{
				Type: domain.EventAssetCleanupFailed, Entity: domain.EntityDish, RestaurantID: 1, CategoryID: 2, EntityID: 7,
			},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {},
		},
		{
			name:  "category update drops category cache",
			event: domain.MenuEvent{Type: domain.EventCategoryUpdated, RestaurantID: 1, CategoryID: 2, EntityID: 2},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				c.On("InvalidateCategories", mock.Anything, 1).Return(nil).Once()
			},
		},
		{
			name:  "category delete drops both caches",
			event: domain.MenuEvent{Type: domain.EventCategoryDeleted, RestaurantID: 1, CategoryID: 2, EntityID: 2},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				c.On("InvalidateCategories", mock.Anything, 1).Return(errors.New("redis down")).Once()
				c.On("InvalidateDishes", mock.Anything, 1, 2).Return(nil).Once()
			},
		},
		{
			name:  "dish create drops dish cache",
			event: domain.MenuEvent{Type: domain.EventDishCreated, RestaurantID: 1, CategoryID: 2, EntityID: 9},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {
				c.On("InvalidateDishes", mock.Anything, 1, 2).Return(nil).Once()
			},
		},
		{
			name:       "unknown event ignored",
			event:      domain.MenuEvent{Type: "price_changed", RestaurantID: 1},
			setupMocks: func(a *mocks.AssetRemover, c *mocks.CacheInvalidator) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			remover := mocks.NewAssetRemover(t)
			cache := mocks.NewCacheInvalidator(t)
			testCase.setupMocks(remover, cache)

			consumer := janitor.NewConsumer(nil, remover, cache)
			consumer.Process(context.Background(), testCase.event)
		})
	}
}

func TestConsumer_Process_WithoutCache(t *testing.T) {
	consumer := janitor.NewConsumer(nil, mocks.NewAssetRemover(t), nil)

	assert.NotPanics(t, func() {
		consumer.Process(context.Background(), domain.MenuEvent{Type: domain.EventDishDeleted, RestaurantID: 1, CategoryID: 2})
	})
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, err := json.Marshal(domain.MenuEvent{Type: domain.EventDishUpdated, RestaurantID: 1, CategoryID: 2, EntityID: 7})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	cache := mocks.NewCacheInvalidator(t)

	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: valid}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(func(context.Context) (kafka.Message, error) {
		cancel()
		return kafka.Message{}, context.Canceled
	}).Once()
	cache.On("InvalidateDishes", mock.Anything, 1, 2).Return(nil).Once()

	consumer := janitor.NewConsumer(reader, mocks.NewAssetRemover(t), cache)

	assert.NoError(t, consumer.Start(ctx))
}

func TestConsumer_Start_ReaderFailure(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker gone")).Once()

	consumer := janitor.NewConsumer(reader, mocks.NewAssetRemover(t), nil)

	assert.EqualError(t, consumer.Start(context.Background()), "broker gone")
}

func TestConsumer_RetriesCleanupOnDisk(t *testing.T) {
	root := t.TempDir()
	store := assets.NewStore(root, nil)
	dir := filepath.Join(root, "uploads", "1", "2")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	file := filepath.Join(dir, "category_2.jpg")
	require.NoError(t, os.WriteFile(file, []byte("jpeg"), 0o644))

	consumer := janitor.NewConsumer(nil, store, nil)
	consumer.Process(context.Background(), domain.MenuEvent{
		Type: domain.EventAssetCleanupFailed, Entity: domain.EntityCategory,
		RestaurantID: 1, CategoryID: 2, EntityID: 2, ImageURL: "category_2.jpg",
	})

	assert.NoFileExists(t, file)
	assert.NoDirExists(t, dir)
}
