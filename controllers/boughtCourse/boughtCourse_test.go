package boughtCourseController_test

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
	"courseshop/routers/boughtCourseRoutes"

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
	boughtCourseRoutes.SetupBoughtCourseRoutes(app)
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

func createCourse(t *testing.T, title string) models.Course {
	t.Helper()
	course := models.Course{Title: title, ImageURL: models.DefaultCourseImage}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func TestCreateBoughtCourseIncrementsCounter(t *testing.T) {
	app := setupTestApp(t)
	course := createCourse(t, "Go Basics")

	resp := doRequest(t, app, fiber.MethodPost, "/bought-courses/", fiber.Map{
		"user_id":   1,
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var bought models.BoughtCourse
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &bought))
	assert.Equal(t, course.ID, bought.CourseID)

	var got models.Course
	require.NoError(t, database.Database.Db.First(&got, course.ID).Error)
	assert.EqualValues(t, 1, got.PurchasedCount)

	// Buying the same course again is allowed and counted
	resp = doRequest(t, app, fiber.MethodPost, "/bought-courses/", fiber.Map{
		"user_id":   1,
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, database.Database.Db.First(&got, course.ID).Error)
	assert.EqualValues(t, 2, got.PurchasedCount)
}

func TestGetUserBoughtCourses(t *testing.T) {
	app := setupTestApp(t)
	first := createCourse(t, "Go Basics")
	second := createCourse(t, "Advanced Go")

	require.NoError(t, database.Database.Db.Create(&models.BoughtCourse{UserID: 1, CourseID: first.ID}).Error)
	require.NoError(t, database.Database.Db.Create(&models.BoughtCourse{UserID: 1, CourseID: second.ID}).Error)
	require.NoError(t, database.Database.Db.Create(&models.BoughtCourse{UserID: 2, CourseID: first.ID}).Error)

	resp := doRequest(t, app, fiber.MethodGet, "/bought-courses/user/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var purchases []models.BoughtCourse
	require.NoError(t, json.Unmarshal(decodeResponse(t, resp).Data, &purchases))
	require.Len(t, purchases, 2)
	assert.Equal(t, "Go Basics", purchases[0].Course.Title)
	assert.Equal(t, "Advanced Go", purchases[1].Course.Title)
}

func TestBoughtCourseCrud(t *testing.T) {
	app := setupTestApp(t)
	first := createCourse(t, "Go Basics")
	second := createCourse(t, "Advanced Go")

	bought := models.BoughtCourse{UserID: 1, CourseID: first.ID}
	require.NoError(t, database.Database.Db.Create(&bought).Error)

	resp := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/bought-courses/%d", bought.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodPatch, fmt.Sprintf("/bought-courses/%d", bought.ID), fiber.Map{
		"course_id": second.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var got models.BoughtCourse
	require.NoError(t, database.Database.Db.First(&got, bought.ID).Error)
	assert.Equal(t, second.ID, got.CourseID)
	assert.EqualValues(t, 1, got.UserID)

	resp = doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/bought-courses/%d", bought.ID), fiber.Map{
		"user_id":   2,
		"course_id": first.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, database.Database.Db.First(&got, bought.ID).Error)
	assert.EqualValues(t, 2, got.UserID)

	resp = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/bought-courses/%d", bought.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/bought-courses/%d", bought.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
