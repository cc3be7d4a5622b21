package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
)

type CategoryService struct {
	tx      Transactor
	repo    CategoryRepository
	images  ImageStore
	effects menuEffects
}

func NewCategoryService(tx Transactor, repo CategoryRepository, images ImageStore, cache MenuCache, publisher MenuPublisher) *CategoryService {
	return &CategoryService{
		tx:      tx,
		repo:    repo,
		images:  images,
		effects: newMenuEffects(cache, publisher),
	}
}

func (s *CategoryService) List(ctx context.Context, restaurantID int) ([]domain.Category, error) {
	cache := s.effects.cache
	var version int64
	if cache != nil {
		cached, ok, err := cache.GetCategories(ctx, restaurantID)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Category cache read failed")
		} else if ok {
			return cached, nil
		}
		// The version must be read before the query.
		if version, err = cache.CategoriesVersion(ctx, restaurantID); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Category cache version read failed")
			cache = nil
		}
	}

	categories, err := s.repo.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.SetCategories(ctx, restaurantID, version, categories); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Category cache write failed")
		}
	}
	return categories, nil
}

// Create inserts the category, then stores its image as
// uploads/{restaurant}/{category}/category_{id}.jpg inside the same
// transaction. An image that fails to save leaves image_url unset.
func (s *CategoryService) Create(ctx context.Context, principal domain.Principal, restaurantID int, in domain.CategoryInput) (*domain.Category, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	category := in.Apply(domain.Category{RestaurantID: restaurantID})
	var written string

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		payload := in.EncodedImage()
		if payload == "" {
			return nil
		}
		filename := domain.ImageFilename(domain.EntityCategory, category.ID)
		ref, err := s.images.SaveEncoded(ctx, payload, restaurantID, category.ID, filename)
		if err != nil {
			return nil
		}
		written = ref

		if err := s.repo.UpdateCategoryImage(ctx, category.ID, ref); err != nil {
			return fmt.Errorf("failed to set category image: %w", err)
		}
		category.ImageURL = &ref
		return nil
	})
	if err != nil {
		if written != "" {
			s.images.Delete(ctx, written, restaurantID, category.ID, domain.EntityCategory, category.ID)
		}
		return nil, err
	}

	s.effects.invalidateCategories(ctx, restaurantID)
	s.effects.publish(ctx, domain.EventCategoryCreated, domain.EntityCategory, restaurantID, category.ID, category.ID, category.ImageURL)
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, principal domain.Principal, restaurantID, categoryID int, in domain.CategoryInput) (*domain.Category, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	var updated domain.Category
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetCategory(ctx, restaurantID, categoryID)
		if err != nil {
			return err
		}
		updated = in.Apply(*existing)

		if payload := in.EncodedImage(); payload != "" {
			filename := domain.ImageFilename(domain.EntityCategory, categoryID)
			if ref, err := s.images.SaveEncoded(ctx, payload, restaurantID, categoryID, filename); err == nil {
				updated.ImageURL = &ref
			}
		}

		if err := s.repo.UpdateCategory(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.effects.invalidateCategories(ctx, restaurantID)
	s.effects.publish(ctx, domain.EventCategoryUpdated, domain.EntityCategory, restaurantID, categoryID, categoryID, updated.ImageURL)
	return &updated, nil
}

// Delete refuses categories that still own dishes. The image and the
// then-empty category directory are removed after commit.
func (s *CategoryService) Delete(ctx context.Context, principal domain.Principal, restaurantID, categoryID int) error {
	if err := authorize(principal, restaurantID); err != nil {
		return err
	}

	var imageURL *string
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetCategory(ctx, restaurantID, categoryID)
		if err != nil {
			return err
		}

		count, err := s.repo.CountDishes(ctx, restaurantID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to count dishes: %w", err)
		}
		if count > 0 {
			return &domain.DependentDishesError{Count: count}
		}

		imageURL = existing.ImageURL
		return s.repo.DeleteCategory(ctx, restaurantID, categoryID)
	})
	if err != nil {
		return err
	}

	s.effects.removeAsset(ctx, s.images, imageURL, restaurantID, categoryID, domain.EntityCategory, categoryID)
	s.images.RemoveDirIfEmpty(ctx, restaurantID, categoryID)

	s.effects.invalidateCategories(ctx, restaurantID)
	s.effects.invalidateDishes(ctx, restaurantID, categoryID)
	s.effects.publish(ctx, domain.EventCategoryDeleted, domain.EntityCategory, restaurantID, categoryID, categoryID, nil)
	return nil
}
