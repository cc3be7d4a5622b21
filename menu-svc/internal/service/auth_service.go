package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"qrmenu-backend/menu-svc/internal/domain"
)

// AuthService registers restaurant owners and issues bearer tokens.
type AuthService struct {
	tx          Transactor
	users       UserRepository
	restaurants RestaurantRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	bcryptCost  int
	now         func() time.Time
}

func NewAuthService(tx Transactor, users UserRepository, restaurants RestaurantRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		tx:          tx,
		users:       users,
		restaurants: restaurants,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		bcryptCost:  bcryptCost,
		now:         time.Now,
	}
}

type claims struct {
	Email        string `json:"email"`
	RestaurantID int    `json:"restaurant_id"`
	jwt.RegisteredClaims
}

// Register creates the owner's restaurant and account in one transaction.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(in.RestaurantName)
	if name == "" {
		name = "My Restaurant"
	}

	user := domain.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
	}
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		restaurant := domain.Restaurant{Name: name}
		if err := s.restaurants.CreateRestaurant(ctx, &restaurant); err != nil {
			return fmt.Errorf("create restaurant: %w", err)
		}
		user.RestaurantID = restaurant.ID
		if err := s.users.CreateUser(ctx, &user); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateJWT(&user)
	if err != nil {
		return nil, fmt.Errorf("generate jwt: %w", err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("generate jwt: %w", err)
	}
	return &domain.AuthResult{Token: token, User: *user}, nil
}

// ParseToken verifies an HS256 token and returns its principal. Any
// failure, expiry included, is ErrForbidden.
func (s *AuthService) ParseToken(tokenString string) (domain.Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return domain.Principal{}, fmt.Errorf("%w: invalid or expired token", domain.ErrForbidden)
	}

	userID, err := strconv.Atoi(c.Subject)
	if err != nil || userID <= 0 {
		return domain.Principal{}, fmt.Errorf("%w: invalid token subject", domain.ErrForbidden)
	}

	return domain.Principal{UserID: userID, Email: c.Email, RestaurantID: c.RestaurantID}, nil
}

func (s *AuthService) Me(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.users.GetUserByID(ctx, principal.UserID)
}

func (s *AuthService) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:        user.Email,
		RestaurantID: user.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	return token.SignedString(s.jwtSecret)
}
