package domain

import (
	"strconv"
	"time"
)

type EntityType string

const (
	EntityDish     EntityType = "dish"
	EntityCategory EntityType = "category"
)

// ImageFilename returns the deterministic filename for an entity's image.
func ImageFilename(entity EntityType, id int) string {
	return string(entity) + "_" + strconv.Itoa(id) + ".jpg"
}

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type Dish struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	CategoryID   int       `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     *string   `json:"image_url"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

type SocialSettings struct {
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurantName"`
	Facebook       string `json:"facebook"`
	Instagram      string `json:"instagram"`
	Twitter        string `json:"twitter"`
	PhoneNumber    string `json:"phoneNumber"`
}

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RestaurantID int       `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated caller decoded from a bearer token.
type Principal struct {
	UserID       int
	Email        string
	RestaurantID int
}

type MenuEvent struct {
	Type         string     `json:"type"`
	Entity       EntityType `json:"entity"`
	RestaurantID int        `json:"restaurant_id"`
	CategoryID   int        `json:"category_id"`
	EntityID     int        `json:"entity_id"`
	ImageURL     string     `json:"image_url,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
}

const (
	EventCategoryCreated    = "category_created"
	EventCategoryUpdated    = "category_updated"
	EventCategoryDeleted    = "category_deleted"
	EventDishCreated        = "dish_created"
	EventDishUpdated        = "dish_updated"
	EventDishDeleted        = "dish_deleted"
	EventAssetCleanupFailed = "asset_cleanup_failed"
)

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
