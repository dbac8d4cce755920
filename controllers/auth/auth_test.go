package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	"coursehub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body fiber.Map) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestSignup(t *testing.T) {
	app, db := setupAuthApp(t)

	status, resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, status, resp["message"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&user).Error)
	require.Equal(t, "USER", user.Role)
	// Stored password must be a hash, never the plaintext
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))

	// Duplicate email is rejected
	status, _ = postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Again",
		"email":    "ravi@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusConflict, status)
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupAuthApp(t)

	status, _ := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Ra",
		"email":    "not-an-email",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestLogin(t *testing.T) {
	app, _ := setupAuthApp(t)

	_, _ = postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "supersecret",
	})

	status, resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, status, resp["message"])

	data := resp["data"].(map[string]interface{})
	require.NotEmpty(t, data["token"])

	status, _ = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginBlocksAfterRepeatedFailures(t *testing.T) {
	app, db := setupAuthApp(t)

	_, _ = postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "supersecret",
	})

	for i := 0; i < 5; i++ {
		status, _ := postJSON(t, app, "/auth/login", fiber.Map{
			"email":    "ravi@example.com",
			"password": "wrongpassword",
		})
		require.Equal(t, http.StatusUnauthorized, status)
	}

	var user models.User
	require.NoError(t, db.Where("email = ?", "ravi@example.com").First(&user).Error)
	require.True(t, user.IsBlocked)

	// Even the right password is refused once blocked
	status, resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ravi@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Contains(t, resp["message"], "blocked")
}
