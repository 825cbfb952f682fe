package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseshop/config"
	"courseshop/database"
	"courseshop/middleware"
	"courseshop/models"
	"courseshop/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Cart{},
		&models.BoughtCourse{},
		&models.Comment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()
	defer resp.Body.Close()
	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func TestCreateUser(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/users/", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)

	resp = doRequest(t, app, fiber.MethodPost, "/users/", fiber.Map{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "supersecret",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered!", decodeResponse(t, resp).Message)
}

func TestGetUserLookups(t *testing.T) {
	app := setupTestApp(t)
	user := createTestUser(t, "bob")

	resp := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, user.ID, got.ID)

	resp = doRequest(t, app, fiber.MethodGet, "/users/email/bob@example.com", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, "bob", got.Username)

	resp = doRequest(t, app, fiber.MethodGet, "/users/username/bob", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, "bob@example.com", got.Email)

	resp = doRequest(t, app, fiber.MethodGet, "/users/9999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found!", decodeResponse(t, resp).Message)
}

func TestGetUsersPagination(t *testing.T) {
	app := setupTestApp(t)
	createTestUser(t, "user1")
	second := createTestUser(t, "user2")
	createTestUser(t, "user3")

	resp := doRequest(t, app, fiber.MethodGet, "/users/?skip=1&limit=1", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var page []models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	resp = doRequest(t, app, fiber.MethodGet, "/users/?skip=10", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &page))
	assert.Empty(t, page)
}

func TestGetCurrentUser(t *testing.T) {
	app := setupTestApp(t)
	user := createTestUser(t, "carol")

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)

	resp := doRequest(t, app, fiber.MethodGet, "/users/me", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, "carol", got.Username)

	resp = doRequest(t, app, fiber.MethodGet, "/users/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Token of a user that no longer exists
	require.NoError(t, database.Database.Db.Delete(&models.User{}, user.ID).Error)
	resp = doRequest(t, app, fiber.MethodGet, "/users/me", nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateUser(t *testing.T) {
	app := setupTestApp(t)
	user := createTestUser(t, "dave")

	resp := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/users/%d", user.ID), fiber.Map{
		"username":   "dave2",
		"email":      "dave2@example.com",
		"password":   "newpassword",
		"avatar_url": "/static/avatars/dave.png",
		"is_admin":   true,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.User
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, "dave2", got.Username)
	assert.Equal(t, "dave2@example.com", got.Email)
	assert.True(t, got.IsAdmin)
}

func TestUpdateUserPartial(t *testing.T) {
	app := setupTestApp(t)
	user := createTestUser(t, "erin")

	resp := doRequest(t, app, fiber.MethodPatch, fmt.Sprintf("/users/%d", user.ID), fiber.Map{
		"avatar_url": "/static/avatars/erin.png",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var got models.User
	require.NoError(t, database.Database.Db.First(&got, user.ID).Error)
	assert.Equal(t, "/static/avatars/erin.png", got.AvatarURL)
	assert.Equal(t, "erin@example.com", got.Email)

	// PATCH cannot grant admin
	resp = doRequest(t, app, fiber.MethodPatch, fmt.Sprintf("/users/%d", user.ID), fiber.Map{
		"is_admin": true,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, database.Database.Db.First(&got, user.ID).Error)
	assert.False(t, got.IsAdmin)
}

func TestDeleteUser(t *testing.T) {
	app := setupTestApp(t)
	user := createTestUser(t, "frank")

	resp := doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
