package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"qrmenu-backend/menu-svc/internal/assets"
	"qrmenu-backend/menu-svc/internal/domain"
	"qrmenu-backend/menu-svc/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Categories  service.CategoryServiceInterface
	Dishes      service.DishServiceInterface
	Restaurants service.RestaurantServiceInterface
	Auth        service.AuthServiceInterface
	DB          Pinger
	// PublicPort is the port written into absolute image URLs.
	PublicPort string
}

func NewHandler(categories service.CategoryServiceInterface, dishes service.DishServiceInterface, restaurants service.RestaurantServiceInterface, auth service.AuthServiceInterface, publicPort string) *Handler {
	return &Handler{
		Categories:  categories,
		Dishes:      dishes,
		Restaurants: restaurants,
		Auth:        auth,
		PublicPort:  publicPort,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/auth/register", h.register).Methods("POST")
	r.HandleFunc("/auth/login", h.login).Methods("POST")
	r.HandleFunc("/auth/me", h.protect(h.me)).Methods("GET")

	r.HandleFunc("/restaurants/{restaurantId}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}", h.protect(h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId}/settings/social", h.getSocial).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}/settings/social", h.protect(h.updateSocial)).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId}/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/restaurants/{restaurantId}/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}/categories", h.protect(h.createCategory)).Methods("POST")
	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}", h.protect(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}", h.protect(h.deleteCategory)).Methods("DELETE")

	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}/dishes", h.protect(h.createDish)).Methods("POST")
	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}/dishes/{dishId}", h.protect(h.updateDish)).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}/dishes/{dishId}", h.protect(h.deleteDish)).Methods("DELETE")
}

func (h *Handler) protect(next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(h.Auth, next)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	if h.DB != nil {
		if err := h.DB.Ping(r.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, map[string]any{
		"status":    status,
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// pathIDs parses the named mux variables as positive integers.
func pathIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]int, bool) {
	vars := mux.Vars(r)
	ids := make([]int, len(names))
	for i, name := range names {
		id, err := strconv.Atoi(vars[name])
		if err != nil || id <= 0 {
			writeMessage(w, http.StatusBadRequest, "Invalid "+name)
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

func principal(r *http.Request) domain.Principal {
	p, _ := PrincipalFromContext(r.Context())
	return p
}

func (h *Handler) origin(r *http.Request) assets.Origin {
	return assets.OriginFromRequest(r, h.PublicPort)
}

func (h *Handler) categoryView(origin assets.Origin, c domain.Category) domain.Category {
	c.ImageURL = origin.Resolve(c.ImageURL, c.RestaurantID, c.ID)
	return c
}

func (h *Handler) dishView(origin assets.Origin, d domain.Dish) domain.Dish {
	d.ImageURL = origin.Resolve(d.ImageURL, d.RestaurantID, d.CategoryID)
	return d
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in domain.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	result, err := h.Auth.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	result, err := h.Auth.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.Me(r.Context(), principal(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	restaurant, err := h.Restaurants.Get(r.Context(), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	var in domain.RestaurantInput
	if !decodeJSON(w, r, &in) {
		return
	}
	restaurant, err := h.Restaurants.Update(r.Context(), principal(r), ids[0], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getSocial(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	settings, err := h.Restaurants.GetSocial(r.Context(), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSocial(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	var in domain.SocialSettingsInput
	if !decodeJSON(w, r, &in) {
		return
	}
	settings, err := h.Restaurants.UpdateSocial(r.Context(), principal(r), ids[0], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	png, err := h.Restaurants.QRCode(r.Context(), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	_, _ = w.Write(png)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	categories, err := h.Categories.List(r.Context(), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}

	origin := h.origin(r)
	views := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		views = append(views, h.categoryView(origin, c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId")
	if !ok {
		return
	}
	var in domain.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	category, err := h.Categories.Create(r.Context(), principal(r), ids[0], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.categoryView(h.origin(r), *category))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId")
	if !ok {
		return
	}
	var in domain.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	category, err := h.Categories.Update(r.Context(), principal(r), ids[0], ids[1], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.categoryView(h.origin(r), *category))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId")
	if !ok {
		return
	}
	if err := h.Categories.Delete(r.Context(), principal(r), ids[0], ids[1]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": ids[1]})
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId")
	if !ok {
		return
	}
	dishes, err := h.Dishes.List(r.Context(), ids[0], ids[1])
	if err != nil {
		writeError(w, r, err)
		return
	}

	origin := h.origin(r)
	views := make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		views = append(views, h.dishView(origin, d))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId")
	if !ok {
		return
	}
	var in domain.DishInput
	if !decodeJSON(w, r, &in) {
		return
	}
	dish, err := h.Dishes.Create(r.Context(), principal(r), ids[0], ids[1], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.dishView(h.origin(r), *dish))
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId", "dishId")
	if !ok {
		return
	}
	var in domain.DishInput
	if !decodeJSON(w, r, &in) {
		return
	}
	dish, err := h.Dishes.Update(r.Context(), principal(r), ids[0], ids[1], ids[2], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.dishView(h.origin(r), *dish))
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "restaurantId", "categoryId", "dishId")
	if !ok {
		return
	}
	if err := h.Dishes.Delete(r.Context(), principal(r), ids[0], ids[1], ids[2]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": ids[2]})
}
