package service

import (
	"context"

	"qrmenu-backend/menu-svc/internal/domain"
)

type CategoryServiceInterface interface {
	List(ctx context.Context, restaurantID int) ([]domain.Category, error)
	Create(ctx context.Context, principal domain.Principal, restaurantID int, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, principal domain.Principal, restaurantID, categoryID int, in domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, principal domain.Principal, restaurantID, categoryID int) error
}

type DishServiceInterface interface {
	List(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, error)
	Create(ctx context.Context, principal domain.Principal, restaurantID, categoryID int, in domain.DishInput) (*domain.Dish, error)
	Update(ctx context.Context, principal domain.Principal, restaurantID, categoryID, dishID int, in domain.DishInput) (*domain.Dish, error)
	Delete(ctx context.Context, principal domain.Principal, restaurantID, categoryID, dishID int) error
}

type RestaurantServiceInterface interface {
	Get(ctx context.Context, restaurantID int) (*domain.Restaurant, error)
	Update(ctx context.Context, principal domain.Principal, restaurantID int, in domain.RestaurantInput) (*domain.Restaurant, error)
	GetSocial(ctx context.Context, restaurantID int) (*domain.SocialSettings, error)
	UpdateSocial(ctx context.Context, principal domain.Principal, restaurantID int, in domain.SocialSettingsInput) (*domain.SocialSettings, error)
	QRCode(ctx context.Context, restaurantID int) ([]byte, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error)
	ParseToken(token string) (domain.Principal, error)
	Me(ctx context.Context, principal domain.Principal) (*domain.User, error)
}

// Transactor runs fn inside one database transaction carried by ctx.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CategoryRepository interface {
	ListCategories(ctx context.Context, restaurantID int) ([]domain.Category, error)
	GetCategory(ctx context.Context, restaurantID, categoryID int) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategoryImage(ctx context.Context, categoryID int, imageURL string) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID int) error
	CountDishes(ctx context.Context, restaurantID, categoryID int) (int, error)
}

type DishRepository interface {
	ListDishes(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, error)
	GetDish(ctx context.Context, restaurantID, categoryID, dishID int) (*domain.Dish, error)
	CreateDish(ctx context.Context, dish *domain.Dish) error
	UpdateDishImage(ctx context.Context, dishID int, imageURL string) error
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, restaurantID, categoryID, dishID int) error
}

type RestaurantRepository interface {
	GetRestaurant(ctx context.Context, restaurantID int) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	UpdateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	GetSocialSettings(ctx context.Context, restaurantID int) (*domain.SocialSettings, error)
	UpsertSocialSettings(ctx context.Context, settings *domain.SocialSettings) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type ImageStore interface {
	SaveEncoded(ctx context.Context, payload string, restaurantID, categoryID int, filename string) (string, error)
	Delete(ctx context.Context, ref string, restaurantID, categoryID int, entity domain.EntityType, entityID int) bool
	RemoveDirIfEmpty(ctx context.Context, restaurantID, categoryID int) bool
}

// MenuCache holds public listings. A miss is (nil, false, nil). Set*
// takes the version read before the database query and drops the listing
// when an invalidation happened since.
type MenuCache interface {
	GetCategories(ctx context.Context, restaurantID int) ([]domain.Category, bool, error)
	CategoriesVersion(ctx context.Context, restaurantID int) (int64, error)
	SetCategories(ctx context.Context, restaurantID int, version int64, categories []domain.Category) error
	GetDishes(ctx context.Context, restaurantID, categoryID int) ([]domain.Dish, bool, error)
	DishesVersion(ctx context.Context, restaurantID, categoryID int) (int64, error)
	SetDishes(ctx context.Context, restaurantID, categoryID int, version int64, dishes []domain.Dish) error
	InvalidateCategories(ctx context.Context, restaurantID int) error
	InvalidateDishes(ctx context.Context, restaurantID, categoryID int) error
}

type MenuPublisher interface {
	PublishMenuEvent(ctx context.Context, event domain.MenuEvent) error
}

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

var (
	_ CategoryServiceInterface   = (*CategoryService)(nil)
	_ DishServiceInterface       = (*DishService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ AuthServiceInterface       = (*AuthService)(nil)
)
