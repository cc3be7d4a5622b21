package janitor

import (
	"context"

	"github.com/segmentio/kafka-go"

	"qrmenu-backend/menu-svc/internal/assets"
	"qrmenu-backend/menu-svc/internal/domain"
	"qrmenu-backend/menu-svc/internal/storage"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type AssetRemover interface {
	Delete(ctx context.Context, ref string, restaurantID, categoryID int, entity domain.EntityType, entityID int) bool
	RemoveDirIfEmpty(ctx context.Context, restaurantID, categoryID int) bool
}

type CacheInvalidator interface {
	InvalidateCategories(ctx context.Context, restaurantID int) error
	InvalidateDishes(ctx context.Context, restaurantID, categoryID int) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, event domain.MenuEvent)
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ AssetRemover      = (*assets.Store)(nil)
	_ CacheInvalidator  = (*storage.RedisCache)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
