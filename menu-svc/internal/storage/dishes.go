package storage

import (
	"context"
	"database/sql"

	"qrmenu-backend/menu-svc/internal/domain"
)

const dishColumns = "id, restaurant_id, category_id, name, description, price, image_url, is_available, created_at"

func scanDish(row rowScanner) (domain.Dish, error) {
	var (
		d        domain.Dish
		imageURL sql.NullString
	)
	if err := row.Scan(&d.ID, &d.RestaurantID, &d.CategoryID, &d.Name, &d.Description,
		&d.Price, &imageURL, &d.IsAvailable, &d.CreatedAt); err != nil {
		return domain.Dish{}, err
	}
	d.ImageURL = nullableString(imageURL)
	return d, nil
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, `
		SELECT `+dishColumns+`
		FROM dishes
		WHERE restaurant_id = $1 AND category_id = $2
		ORDER BY id`, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, restaurantID, categoryID, dishID int) (*domain.Dish, error) {
	row := r.exec(ctx).QueryRowContext(ctx, `
		SELECT `+dishColumns+`
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2 AND category_id = $3`,
		dishID, restaurantID, categoryID)

	d, err := scanDish(row)
	if err != nil {
		return nil, notFound(err, "dish")
	}
	return &d, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, d *domain.Dish) error {
	return r.exec(ctx).QueryRowContext(ctx, `
		INSERT INTO dishes (restaurant_id, category_id, name, description, price, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		d.RestaurantID, d.CategoryID, d.Name, d.Description, d.Price, d.ImageURL, d.IsAvailable,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *PostgresRepository) UpdateDishImage(ctx context.Context, dishID int, imageURL string) error {
	result, err := r.exec(ctx).ExecContext(ctx,
		"UPDATE dishes SET image_url = $1 WHERE id = $2", imageURL, dishID)
	if err != nil {
		return err
	}
	return requireAffected(result, "dish")
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, d *domain.Dish) error {
	result, err := r.exec(ctx).ExecContext(ctx, `
		UPDATE dishes
		SET name = $1, description = $2, price = $3, image_url = $4, is_available = $5
		WHERE id = $6 AND restaurant_id = $7 AND category_id = $8`,
		d.Name, d.Description, d.Price, d.ImageURL, d.IsAvailable, d.ID, d.RestaurantID, d.CategoryID)
	if err != nil {
		return err
	}
	return requireAffected(result, "dish")
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, restaurantID, categoryID, dishID int) error {
	result, err := r.exec(ctx).ExecContext(ctx,
		"DELETE FROM dishes WHERE id = $1 AND restaurant_id = $2 AND category_id = $3",
		dishID, restaurantID, categoryID)
	if err != nil {
		return err
	}
	return requireAffected(result, "dish")
}
