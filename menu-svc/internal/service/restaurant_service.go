package service

import (
	"context"
	"fmt"

	"qrmenu-backend/menu-svc/internal/domain"
)

type RestaurantService struct {
	tx   Transactor
	repo RestaurantRepository
	qr   QRGenerator
}

func NewRestaurantService(tx Transactor, repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{tx: tx, repo: repo, qr: qr}
}

func (s *RestaurantService) Get(ctx context.Context, restaurantID int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, restaurantID)
}

func (s *RestaurantService) Update(ctx context.Context, principal domain.Principal, restaurantID int, in domain.RestaurantInput) (*domain.Restaurant, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}

	var updated domain.Restaurant
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetRestaurant(ctx, restaurantID)
		if err != nil {
			return err
		}
		updated = in.Apply(*existing)
		if err := s.repo.UpdateRestaurant(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update restaurant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetSocial returns empty links for a restaurant that never saved any.
func (s *RestaurantService) GetSocial(ctx context.Context, restaurantID int) (*domain.SocialSettings, error) {
	return s.repo.GetSocialSettings(ctx, restaurantID)
}

func (s *RestaurantService) UpdateSocial(ctx context.Context, principal domain.Principal, restaurantID int, in domain.SocialSettingsInput) (*domain.SocialSettings, error) {
	if err := authorize(principal, restaurantID); err != nil {
		return nil, err
	}

	var updated domain.SocialSettings
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetSocialSettings(ctx, restaurantID)
		if err != nil {
			return err
		}
		updated = in.Apply(*existing)
		if err := s.repo.UpsertSocialSettings(ctx, &updated); err != nil {
			return fmt.Errorf("failed to save social settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RestaurantService) QRCode(ctx context.Context, restaurantID int) ([]byte, error) {
	if _, err := s.repo.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	return png, nil
}
