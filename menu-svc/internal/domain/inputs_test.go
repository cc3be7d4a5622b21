package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCategoryInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     CategoryInput
		create    bool
		expectErr bool
	}{
		{"create with name", CategoryInput{Name: ptr("Soups")}, true, false},
		{"create without name", CategoryInput{}, true, true},
		{"create with blank name", CategoryInput{Name: ptr("   ")}, true, true},
		{"update without name", CategoryInput{Description: ptr("x")}, false, false},
		{"update with blank name", CategoryInput{Name: ptr("")}, false, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var err error
			if testCase.create {
				err = testCase.input.ValidateCreate()
			} else {
				err = testCase.input.ValidateUpdate()
			}
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDishInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     DishInput
		create    bool
		expectErr bool
	}{
		{"create complete", DishInput{Name: ptr("Borscht"), Price: ptr(6.5)}, true, false},
		{"create free dish", DishInput{Name: ptr("Water"), Price: ptr(0.0)}, true, false},
		{"create without price", DishInput{Name: ptr("Borscht")}, true, true},
		{"create negative price", DishInput{Name: ptr("Borscht"), Price: ptr(-1.0)}, true, true},
		{"update price only", DishInput{Price: ptr(3.0)}, false, false},
		{"update negative price", DishInput{Price: ptr(-0.01)}, false, true},
		{"update blank name", DishInput{Name: ptr(" ")}, false, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var err error
			if testCase.create {
				err = testCase.input.ValidateCreate()
			} else {
				err = testCase.input.ValidateUpdate()
			}
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryInput_Apply(t *testing.T) {
	existing := Category{ID: 3, Name: "Mains", Description: ptr("old"), ImageURL: ptr("category_3.jpg")}

	kept := CategoryInput{Name: ptr("  Starters ")}.Apply(existing)
	assert.Equal(t, "Starters", kept.Name)
	assert.Equal(t, "old", *kept.Description)
	assert.Equal(t, "category_3.jpg", *kept.ImageURL)

	cleared := CategoryInput{ImageURL: ptr("")}.Apply(existing)
	assert.Nil(t, cleared.ImageURL)
	assert.Equal(t, "Mains", cleared.Name)
}

func TestDishInput_Apply(t *testing.T) {
	existing := Dish{ID: 7, Name: "Soup", Price: 5, IsAvailable: true, ImageURL: ptr("dish_7.jpg")}

	updated := DishInput{Price: ptr(6.5), IsAvailable: ptr(false)}.Apply(existing)

	assert.Equal(t, "Soup", updated.Name)
	assert.Equal(t, 6.5, updated.Price)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "dish_7.jpg", *updated.ImageURL)
}

func TestEncodedImage(t *testing.T) {
	assert.Empty(t, CategoryInput{}.EncodedImage())
	assert.Equal(t, "abc", DishInput{ImageBase64: ptr("  abc\n")}.EncodedImage())
}

func TestRestaurantInput_Apply_KeepsNameWhenBlank(t *testing.T) {
	existing := Restaurant{Name: "Cafe", Address: "Main St"}

	updated := RestaurantInput{Name: ptr(" "), Address: ptr("Side St")}.Apply(existing)

	assert.Equal(t, "Cafe", updated.Name)
	assert.Equal(t, "Side St", updated.Address)
}

func TestRegisterInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterInput
		expectErr bool
	}{
		{"valid", RegisterInput{Email: "owner@cafe.com", Password: "secret1"}, false},
		{"missing at", RegisterInput{Email: "owner.cafe.com", Password: "secret1"}, true},
		{"no domain dot", RegisterInput{Email: "owner@cafe", Password: "secret1"}, true},
		{"space in email", RegisterInput{Email: "ow ner@cafe.com", Password: "secret1"}, true},
		{"short password", RegisterInput{Email: "owner@cafe.com", Password: "12345"}, true},
		{"longest password", RegisterInput{Email: "owner@cafe.com", Password: strings.Repeat("p", MaxPasswordLength)}, false},
		{"password over bcrypt limit", RegisterInput{Email: "owner@cafe.com", Password: strings.Repeat("p", MaxPasswordLength+1)}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.input.Validate()
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginInput_Validate(t *testing.T) {
	assert.NoError(t, LoginInput{Email: "a@b.co", Password: "x"}.Validate())
	assert.ErrorIs(t, LoginInput{Email: " ", Password: "x"}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, LoginInput{Email: "a@b.co"}.Validate(), ErrInvalidInput)
}

func TestSocialSettingsInput_Apply(t *testing.T) {
	existing := SocialSettings{Facebook: "fb", Instagram: "ig"}

	updated := SocialSettingsInput{Instagram: ptr(" new-ig "), PhoneNumber: ptr("+100")}.Apply(existing)

	assert.Equal(t, "fb", updated.Facebook)
	assert.Equal(t, "new-ig", updated.Instagram)
	assert.Equal(t, "+100", updated.PhoneNumber)
}

func TestDependentDishesError(t *testing.T) {
	var err error = &DependentDishesError{Count: 3}

	var target *DependentDishesError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 3, target.Count)
	assert.Contains(t, err.Error(), "3 dishes")
}
