package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrmenu-backend/config"
	"qrmenu-backend/menu-svc/internal/domain"
	"qrmenu-backend/menu-svc/internal/storage"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		PublicPort:  "3000",
		UploadsRoot: t.TempDir(),
		MenuBaseURL: "http://localhost:3000",
		CacheTTL:    time.Minute,
		JWTSecret:   "secret",
		TokenTTL:    time.Hour,
		BcryptCost:  4,
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["janitor"])
	assert.NotNil(t, root.RunE, "serve must be the default action")
}

func TestBuildHandler_Health(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	handler := buildHandler(testConfig(t), db, nil, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildHandler_ServesCachedCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ref := "category_3.jpg"
	cache := storage.NewRedisCache(rdb, time.Minute)
	require.NoError(t, cache.SetCategories(context.Background(), 1, 0, []domain.Category{
		{ID: 3, RestaurantID: 1, Name: "Mains", ImageURL: &ref},
	}))

	handler := buildHandler(testConfig(t), db, rdb, nil)

	req := httptest.NewRequest(http.MethodGet, "/restaurants/1/categories", nil)
	req.Host = "menu.local"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "http://menu.local:3000/uploads/1/3/category_3.jpg", *categories[0].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet(), "a cache hit must not query the database")
}
