package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
)

type DishService struct {
	tx         Transactor
	repo       DishRepository
	categories CategoryRepository
	images     ImageStore
	effects    menuEffects
}

func NewDishService(tx Transactor, repo DishRepository, categories CategoryRepository, images ImageStore, cache MenuCache, publisher MenuPublisher) *DishService {
	return &DishService{
		tx:         tx,
		repo:       repo,
		categories: categories,
		images:     images,
		effects:    newMenuEffects(cache, publisher),
	}
}

// List returns the dishes of one category. An unknown category is
// ErrNotFound rather than an empty list.
func (s *DishService) List(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, error) {
	cache := s.effects.cache
	var version int64
	if cache != nil {
		cached, ok, err := cache.GetDishes(ctx, restaurantID, categoryID)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Dish cache read failed")
		} else if ok {
			return cached, nil
		}
		if version, err = cache.DishesVersion(ctx, restaurantID, categoryID); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Dish cache version read failed")
			cache = nil
		}
	}

	if _, err := s.categories.GetCategory(ctx, restaurantID, categoryID); err != nil {
		return nil, err
	}
	dishes, err := s.repo.ListDishes(ctx, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.SetDishes(ctx, restaurantID, categoryID, version, dishes); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Dish cache write failed")
		}
	}
	return dishes, nil
}

func (s *DishService) Create(ctx context.Context, principal domain.Principal, restaurantID, categoryID int, in domain.DishInput) (*domain.Dish, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	dish := in.Apply(domain.Dish{RestaurantID: restaurantID, CategoryID: categoryID, IsAvailable: true})
	var written string

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.categories.GetCategory(ctx, restaurantID, categoryID); err != nil {
			return err
		}
		if err := s.repo.CreateDish(ctx, &dish); err != nil {
			return fmt.Errorf("failed to create dish: %w", err)
		}

		payload := in.EncodedImage()
		if payload == "" {
			return nil
		}
		filename := domain.ImageFilename(domain.EntityDish, dish.ID)
		ref, err := s.images.SaveEncoded(ctx, payload, restaurantID, categoryID, filename)
		if err != nil {
			return nil
		}
		written = ref

		if err := s.repo.UpdateDishImage(ctx, dish.ID, ref); err != nil {
			return fmt.Errorf("failed to set dish image: %w", err)
		}
		dish.ImageURL = &ref
		return nil
	})
	if err != nil {
		if written != "" {
			s.images.Delete(ctx, written, restaurantID, categoryID, domain.EntityDish, dish.ID)
		}
		return nil, err
	}

	s.effects.invalidateDishes(ctx, restaurantID, categoryID)
	s.effects.publish(ctx, domain.EventDishCreated, domain.EntityDish, restaurantID, categoryID, dish.ID, dish.ImageURL)
	return &dish, nil
}

// Update merges the submitted fields into the stored dish. A new image
// overwrites dish_{id}.jpg; without one the stored image_url is kept.
func (s *DishService) Update(ctx context.Context, principal domain.Principal, restaurantID, categoryID, dishID int, in domain.DishInput) (*domain.Dish, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	var updated domain.Dish
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetDish(ctx, restaurantID, categoryID, dishID)
		if err != nil {
			return err
		}
		updated = in.Apply(*existing)

		if payload := in.EncodedImage(); payload != "" {
			filename := domain.ImageFilename(domain.EntityDish, dishID)
			if ref, err := s.images.SaveEncoded(ctx, payload, restaurantID, categoryID, filename); err == nil {
				updated.ImageURL = &ref
			}
		}

		if err := s.repo.UpdateDish(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update dish: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.effects.invalidateDishes(ctx, restaurantID, categoryID)
	s.effects.publish(ctx, domain.EventDishUpdated, domain.EntityDish, restaurantID, categoryID, dishID, updated.ImageURL)
	return &updated, nil
}

func (s *DishService) Delete(ctx context.Context, principal domain.Principal, restaurantID, categoryID, dishID int) error {
	if err := authorize(principal, restaurantID); err != nil {
		return err
	}

	var imageURL *string
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetDish(ctx, restaurantID, categoryID, dishID)
		if err != nil {
			return err
		}
		imageURL = existing.ImageURL
		return s.repo.DeleteDish(ctx, restaurantID, categoryID, dishID)
	})
	if err != nil {
		return err
	}

	s.effects.removeAsset(ctx, s.images, imageURL, restaurantID, categoryID, domain.EntityDish, dishID)
	s.effects.invalidateDishes(ctx, restaurantID, categoryID)
	s.effects.publish(ctx, domain.EventDishDeleted, domain.EntityDish, restaurantID, categoryID, dishID, nil)
	return nil
}
