package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public menu link of a restaurant.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) MenuURL(restaurantID int) string {
	return fmt.Sprintf("%s/menu/%d", strings.TrimRight(g.BaseURL, "/"), restaurantID)
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.MenuURL(restaurantID), qrcode.Medium, size)
}
