// Package janitor consumes menu events to retry image cleanups that failed
// after a delete and to drop cached menus on every instance.
package janitor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Assets AssetRemover
	// Cache is nil when Redis is not configured.
	Cache CacheInvalidator
}

func NewConsumer(reader MessageReader, assets AssetRemover, cache CacheInvalidator) *Consumer {
	return &Consumer{
		Reader: reader,
		Assets: assets,
		Cache:  cache,
	}
}

// Start reads events until ctx is cancelled. Undecodable messages are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("Starting menu event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logger.Info().Msg("Menu event consumer stopped")
				return nil
			}
			logger.Error().Err(err).Msg("Error reading message")
			return err
		}

		var event domain.MenuEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Warn().Err(err).Int64("offset", message.Offset).Msg("Skipping undecodable menu event")
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.MenuEvent) {
	logger := zerolog.Ctx(ctx).With().
		Str("event", event.Type).
		Int("restaurant_id", event.RestaurantID).
		Int("category_id", event.CategoryID).
		Int("entity_id", event.EntityID).
		Logger()

	switch event.Type {
	case domain.EventAssetCleanupFailed:
		c.retryCleanup(logger.WithContext(ctx), event)
	case domain.EventCategoryCreated, domain.EventCategoryUpdated:
		c.invalidateCategories(ctx, &logger, event.RestaurantID)
	case domain.EventCategoryDeleted:
		c.invalidateCategories(ctx, &logger, event.RestaurantID)
		c.invalidateDishes(ctx, &logger, event.RestaurantID, event.CategoryID)
	case domain.EventDishCreated, domain.EventDishUpdated, domain.EventDishDeleted:
		c.invalidateDishes(ctx, &logger, event.RestaurantID, event.CategoryID)
	default:
		logger.Debug().Msg("Ignoring menu event")
	}
}

func (c *Consumer) retryCleanup(ctx context.Context, event domain.MenuEvent) {
	logger := zerolog.Ctx(ctx)
	if event.ImageURL == "" || event.Entity == "" {
		logger.Warn().Msg("Cleanup event without image or entity")
		return
	}
	if !c.Assets.Delete(ctx, event.ImageURL, event.RestaurantID, event.CategoryID, event.Entity, event.EntityID) {
		logger.Warn().Str("reference", event.ImageURL).Msg("Image cleanup retry did not remove a file")
		return
	}
	if event.Entity == domain.EntityCategory {
		c.Assets.RemoveDirIfEmpty(ctx, event.RestaurantID, event.CategoryID)
	}
	logger.Info().Str("reference", event.ImageURL).Msg("Image cleanup retry succeeded")
}

func (c *Consumer) invalidateCategories(ctx context.Context, logger *zerolog.Logger, restaurantID int) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.InvalidateCategories(ctx, restaurantID); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate category cache")
	}
}

func (c *Consumer) invalidateDishes(ctx context.Context, logger *zerolog.Logger, restaurantID, categoryID int) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.InvalidateDishes(ctx, restaurantID, categoryID); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate dish cache")
	}
}
