package storage

import (
	"context"
	"database/sql"

	"qrmenu-backend/menu-svc/internal/domain"
)

const categoryColumns = "id, restaurant_id, name, description, image_url, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (domain.Category, error) {
	var (
		c           domain.Category
		description sql.NullString
		imageURL    sql.NullString
	)
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &description, &imageURL, &c.CreatedAt); err != nil {
		return domain.Category{}, err
	}
	c.Description = nullableString(description)
	c.ImageURL = nullableString(imageURL)
	return c, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID int) ([]domain.Category, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, restaurantID, categoryID int) (*domain.Category, error) {
	row := r.exec(ctx).QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE id = $1 AND restaurant_id = $2`, categoryID, restaurantID)

	c, err := scanCategory(row)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return r.exec(ctx).QueryRowContext(ctx,
		"INSERT INTO categories (restaurant_id, name, description, image_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		c.RestaurantID, c.Name, c.Description, c.ImageURL,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) UpdateCategoryImage(ctx context.Context, categoryID int, imageURL string) error {
	result, err := r.exec(ctx).ExecContext(ctx,
		"UPDATE categories SET image_url = $1 WHERE id = $2", imageURL, categoryID)
	if err != nil {
		return err
	}
	return requireAffected(result, "category")
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.exec(ctx).ExecContext(ctx, `
		UPDATE categories
		SET name = $1, description = $2, image_url = $3
		WHERE id = $4 AND restaurant_id = $5`,
		c.Name, c.Description, c.ImageURL, c.ID, c.RestaurantID)
	if err != nil {
		return err
	}
	return requireAffected(result, "category")
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, categoryID int) error {
	result, err := r.exec(ctx).ExecContext(ctx,
		"DELETE FROM categories WHERE id = $1 AND restaurant_id = $2", categoryID, restaurantID)
	if err != nil {
		return err
	}
	return requireAffected(result, "category")
}

func (r *PostgresRepository) CountDishes(ctx context.Context, restaurantID, categoryID int) (int, error) {
	var count int
	err := r.exec(ctx).QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dishes WHERE category_id = $1 AND restaurant_id = $2",
		categoryID, restaurantID).Scan(&count)
	return count, err
}
