package storage

import (
	"context"

	"qrmenu-backend/menu-svc/internal/domain"
)

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.exec(ctx).QueryRowContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.exec(ctx).QueryRowContext(ctx,
		"INSERT INTO restaurants (name, address, description) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.Name, rest.Address, rest.Description,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	result, err := r.exec(ctx).ExecContext(ctx,
		"UPDATE restaurants SET name = $1, address = $2, description = $3 WHERE id = $4",
		rest.Name, rest.Address, rest.Description, rest.ID)
	if err != nil {
		return err
	}
	return requireAffected(result, "restaurant")
}

func (r *PostgresRepository) GetSocialSettings(ctx context.Context, restaurantID int) (*domain.SocialSettings, error) {
	var s domain.SocialSettings
	err := r.exec(ctx).QueryRowContext(ctx, `
		SELECT r.id, r.name,
			COALESCE(s.facebook, ''), COALESCE(s.instagram, ''),
			COALESCE(s.twitter, ''), COALESCE(s.phone_number, '')
		FROM restaurants r
		LEFT JOIN restaurant_social s ON s.restaurant_id = r.id
		WHERE r.id = $1`, restaurantID).
		Scan(&s.RestaurantID, &s.RestaurantName, &s.Facebook, &s.Instagram, &s.Twitter, &s.PhoneNumber)
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return &s, nil
}

func (r *PostgresRepository) UpsertSocialSettings(ctx context.Context, s *domain.SocialSettings) error {
	_, err := r.exec(ctx).ExecContext(ctx, `
		INSERT INTO restaurant_social (restaurant_id, facebook, instagram, twitter, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (restaurant_id) DO UPDATE
		SET facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			twitter = EXCLUDED.twitter,
			phone_number = EXCLUDED.phone_number`,
		s.RestaurantID, s.Facebook, s.Instagram, s.Twitter, s.PhoneNumber)
	return err
}
