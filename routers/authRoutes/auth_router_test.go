package authRoutes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TrinhDucTiep/Knowledge-Sharing/config"
	"github.com/TrinhDucTiep/Knowledge-Sharing/database"
	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/authRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *middleware.Env) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	env := &middleware.Env{
		Cfg: &config.Config{
			JWTKey:       "test-secret",
			SaltRound:    bcrypt.MinCost,
			TokenTTL:     1,
			LimitWindow:  60,
			LimitStrict:  100,
			LimitRelaxed: 100,
		},
		Stores:  store.New(db),
		Payment: &store.BalanceCharger{DB: db},
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, env)
	return app, env
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body map[string]interface{}) (int, map[string]interface{}) {
	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password12345",
	})
	require.Equal(t, fiber.StatusOK, status)

	// Duplicate email conflicts.
	status, _ = postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password12345",
	})
	assert.Equal(t, fiber.StatusConflict, status)

	// Wrong password is rejected without leaking which part was wrong.
	status, _ = postJSON(t, app, "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, result := postJSON(t, app, "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "password12345",
	})
	require.Equal(t, fiber.StatusOK, status)
	token := result["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	status, _ = postJSON(t, app, "/api/auth/validate", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = postJSON(t, app, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	// A logged-out token is dead even though its exp claim is still valid.
	status, _ = postJSON(t, app, "/api/auth/validate", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "password12345",
	})
	require.Equal(t, fiber.StatusOK, status)

	login := func() string {
		status, result := postJSON(t, app, "/api/auth/login", "", map[string]interface{}{
			"email":    "bob@example.com",
			"password": "password12345",
		})
		require.Equal(t, fiber.StatusOK, status)
		return result["data"].(map[string]interface{})["token"].(string)
	}

	first := login()
	second := login()

	status, _ = postJSON(t, app, "/api/auth/logout/all", first, nil)
	require.Equal(t, fiber.StatusOK, status)

	for _, token := range []string{first, second} {
		status, _ = postJSON(t, app, "/api/auth/validate", token, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"name":     "Eve",
		"email":    "not-an-email",
		"password": "password12345",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _ = postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
