package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
)

// authorize rejects principals acting outside their own restaurant.
func authorize(principal domain.Principal, restaurantID int) error {
	if principal.RestaurantID != restaurantID {
		return fmt.Errorf("%w: restaurant %d is not yours", domain.ErrForbidden, restaurantID)
	}
	return nil
}

// menuEffects runs the post-commit work shared by category and dish
// writes. Cache and publisher are optional.
type menuEffects struct {
	cache     MenuCache
	publisher MenuPublisher
	now       func() time.Time
}

func newMenuEffects(cache MenuCache, publisher MenuPublisher) menuEffects {
	return menuEffects{cache: cache, publisher: publisher, now: time.Now}
}

func (e menuEffects) invalidateCategories(ctx context.Context, restaurantID int) {
	if e.cache == nil {
		return
	}
	if err := e.cache.InvalidateCategories(ctx, restaurantID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("restaurant_id", restaurantID).Msg("Failed to invalidate category cache")
	}
}

func (e menuEffects) invalidateDishes(ctx context.Context, restaurantID, categoryID int) {
	if e.cache == nil {
		return
	}
	if err := e.cache.InvalidateDishes(ctx, restaurantID, categoryID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Int("restaurant_id", restaurantID).
			Int("category_id", categoryID).
			Msg("Failed to invalidate dish cache")
	}
}

func (e menuEffects) publish(ctx context.Context, eventType string, entity domain.EntityType, restaurantID, categoryID, entityID int, imageURL *string) {
	if e.publisher == nil {
		return
	}
	event := domain.MenuEvent{
		Type:         eventType,
		Entity:       entity,
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		EntityID:     entityID,
		Timestamp:    e.now(),
	}
	if imageURL != nil {
		event.ImageURL = *imageURL
	}
	if err := e.publisher.PublishMenuEvent(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("event", eventType).Msg("Failed to publish menu event")
	}
}

// removeAsset deletes an entity's image after its row is gone. A failed
// delete is reported as an event and never returned.
func (e menuEffects) removeAsset(ctx context.Context, images ImageStore, ref *string, restaurantID, categoryID int, entity domain.EntityType, entityID int) {
	if ref == nil || *ref == "" {
		return
	}
	if images.Delete(ctx, *ref, restaurantID, categoryID, entity, entityID) {
		return
	}
	e.publish(ctx, domain.EventAssetCleanupFailed, entity, restaurantID, categoryID, entityID, ref)
}
