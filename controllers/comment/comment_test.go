package commentController_test

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
	"courseshop/models"
	"courseshop/routers/commentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	commentRoutes.SetupCommentRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
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

func TestCreateComment(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/comments/", fiber.Map{
		"user_id":   1,
		"course_id": 1,
		"content":   "Great course!",
		"rating":    5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &comment))
	assert.Equal(t, "Great course!", comment.Content)
	assert.Equal(t, 5, comment.Rating)
}

func TestCreateCommentRatingUnbounded(t *testing.T) {
	app := setupTestApp(t)

	// The rating is stored as given, no range check
	resp := doRequest(t, app, fiber.MethodPost, "/comments/", fiber.Map{
		"user_id":   1,
		"course_id": 1,
		"content":   "Off the charts",
		"rating":    42,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &comment))
	assert.Equal(t, 42, comment.Rating)
}

func TestGetCourseComments(t *testing.T) {
	app := setupTestApp(t)

	require.NoError(t, database.Database.Db.Create(&models.Comment{UserID: 1, CourseID: 1, Content: "first", Rating: 4}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Comment{UserID: 2, CourseID: 1, Content: "second", Rating: 3}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Comment{UserID: 1, CourseID: 2, Content: "other course", Rating: 5}).Error)

	resp := doRequest(t, app, fiber.MethodGet, "/comments/course/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var comments []models.Comment
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func TestUpdateComment(t *testing.T) {
	app := setupTestApp(t)

	comment := models.Comment{UserID: 1, CourseID: 1, Content: "draft", Rating: 3}
	require.NoError(t, database.Database.Db.Create(&comment).Error)

	resp := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/comments/%d", comment.ID), fiber.Map{
		"user_id":   1,
		"course_id": 1,
		"content":   "final",
		"rating":    4,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.Comment
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &got))
	assert.Equal(t, "final", got.Content)
	assert.Equal(t, 4, got.Rating)

	resp = doRequest(t, app, fiber.MethodPatch, fmt.Sprintf("/comments/%d", comment.ID), fiber.Map{
		"rating": 1,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, database.Database.Db.First(&got, comment.ID).Error)
	assert.Equal(t, 1, got.Rating)
	assert.Equal(t, "final", got.Content)
}

func TestDeleteComment(t *testing.T) {
	app := setupTestApp(t)

	comment := models.Comment{UserID: 1, CourseID: 1, Content: "gone soon", Rating: 2}
	require.NoError(t, database.Database.Db.Create(&comment).Error)

	resp := doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/comments/%d", comment.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
