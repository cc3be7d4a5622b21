package storage

import (
	"context"
	"strings"

	"qrmenu-backend/menu-svc/internal/domain"
)

func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	err := r.exec(ctx).QueryRowContext(ctx,
		"INSERT INTO users (email, password_hash, restaurant_id) VALUES ($1, $2, $3) RETURNING id, created_at",
		strings.ToLower(u.Email), u.PasswordHash, u.RestaurantID,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.exec(ctx).QueryRowContext(ctx,
		"SELECT id, email, password_hash, restaurant_id, created_at FROM users WHERE email = $1",
		strings.ToLower(email)).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RestaurantID, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	var u domain.User
	err := r.exec(ctx).QueryRowContext(ctx,
		"SELECT id, email, password_hash, restaurant_id, created_at FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RestaurantID, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return &u, nil
}
