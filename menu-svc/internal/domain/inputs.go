package domain

import (
	"fmt"
	"strings"
)

// CategoryInput is a create or partial-update request. Nil fields are absent.
type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	ImageBase64 *string `json:"imageBase64"`
}

type DishInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	ImageBase64 *string  `json:"imageBase64"`
	IsAvailable *bool    `json:"is_available"`
}

type RestaurantInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

func (in CategoryInput) ValidateCreate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

func (in CategoryInput) ValidateUpdate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	return nil
}

func (in CategoryInput) EncodedImage() string {
	return encodedImage(in.ImageBase64)
}

// Apply returns existing with every submitted field overwritten.
func (in CategoryInput) Apply(existing Category) Category {
	if in.Name != nil {
		existing.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		existing.Description = in.Description
	}
	if in.ImageURL != nil {
		existing.ImageURL = nullable(*in.ImageURL)
	}
	return existing
}

func (in DishInput) ValidateCreate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Price == nil {
		return fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	return in.validatePrice()
}

func (in DishInput) ValidateUpdate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	return in.validatePrice()
}

func (in DishInput) validatePrice() error {
	if in.Price != nil && *in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func (in DishInput) EncodedImage() string {
	return encodedImage(in.ImageBase64)
}

func (in DishInput) Apply(existing Dish) Dish {
	if in.Name != nil {
		existing.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Price != nil {
		existing.Price = *in.Price
	}
	if in.ImageURL != nil {
		existing.ImageURL = nullable(*in.ImageURL)
	}
	if in.IsAvailable != nil {
		existing.IsAvailable = *in.IsAvailable
	}
	return existing
}

func (in RestaurantInput) Apply(existing Restaurant) Restaurant {
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		existing.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		existing.Address = *in.Address
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	return existing
}

func encodedImage(payload *string) string {
	if payload == nil {
		return ""
	}
	return strings.TrimSpace(*payload)
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type RegisterInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RestaurantName string `json:"restaurantName"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Password bounds for registration. bcrypt only hashes the first 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

func (in RegisterInput) Validate() error {
	email := strings.TrimSpace(in.Email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	if len(in.Password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordLength)
	}
	return nil
}

func (in LoginInput) Validate() error {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	return nil
}

type SocialSettingsInput struct {
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	Twitter     *string `json:"twitter"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (in SocialSettingsInput) Apply(existing SocialSettings) SocialSettings {
	if in.Facebook != nil {
		existing.Facebook = strings.TrimSpace(*in.Facebook)
	}
	if in.Instagram != nil {
		existing.Instagram = strings.TrimSpace(*in.Instagram)
	}
	if in.Twitter != nil {
		existing.Twitter = strings.TrimSpace(*in.Twitter)
	}
	if in.PhoneNumber != nil {
		existing.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	return existing
}
