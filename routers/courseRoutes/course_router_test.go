package courseRoutes_test

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
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/accountRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/authRoutes"
	"github.com/TrinhDucTiep/Knowledge-Sharing/routers/courseRoutes"
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
	accountRoutes.SetupAccountRoutes(app, env)
	courseRoutes.SetupCourseRoutes(app, env)
	return app, env
}

func request(t *testing.T, app *fiber.App, method, path, token string, body map[string]interface{}) (int, map[string]interface{}) {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
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

// signup registers and logs in an account, returning its bearer token.
func signup(t *testing.T, app *fiber.App, email string) string {
	status, _ := request(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "password12345",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, result := request(t, app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password12345",
	})
	require.Equal(t, fiber.StatusOK, status)
	return result["data"].(map[string]interface{})["token"].(string)
}

func createCourse(t *testing.T, app *fiber.App, token string, price uint) uint {
	status, result := request(t, app, "POST", "/api/course/", token, map[string]interface{}{
		"title": "Distributed Systems",
		"price": price,
	})
	require.Equal(t, fiber.StatusOK, status)
	id := result["data"].(map[string]interface{})["ID"].(float64)
	return uint(id)
}

func TestFreeRegistrationOverHTTP(t *testing.T) {
	app, _ := setupApp(t)
	ownerToken := signup(t, app, "owner@example.com")
	learnerToken := signup(t, app, "learner@example.com")
	courseID := createCourse(t, app, ownerToken, 0)

	path := fmt.Sprintf("/api/course/register/%d", courseID)
	status, _ := request(t, app, "POST", path, learnerToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "POST", path, learnerToken, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// Unknown course id fails the existence guard.
	status, _ = request(t, app, "POST", "/api/course/register/424242", learnerToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	// No token fails before anything else.
	status, _ = request(t, app, "POST", path, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPaidRegistrationOverHTTP(t *testing.T) {
	app, _ := setupApp(t)
	ownerToken := signup(t, app, "owner@example.com")
	learnerToken := signup(t, app, "learner@example.com")
	courseID := createCourse(t, app, ownerToken, 75)

	payPath := fmt.Sprintf("/api/course/pay/%d", courseID)

	// The password re-check guards payment: a valid token alone is not enough.
	status, _ := request(t, app, "POST", payPath, learnerToken, map[string]interface{}{
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Correct password but empty balance: the charge declines.
	status, _ = request(t, app, "POST", payPath, learnerToken, map[string]interface{}{
		"password": "password12345",
	})
	assert.Equal(t, fiber.StatusPaymentRequired, status)

	status, _ = request(t, app, "POST", "/api/account/deposit", learnerToken, map[string]interface{}{
		"password": "password12345",
		"amount":   100,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "POST", payPath, learnerToken, map[string]interface{}{
		"password": "password12345",
	})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "POST", payPath, learnerToken, map[string]interface{}{
		"password": "password12345",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRequestConfirmOverHTTP(t *testing.T) {
	app, env := setupApp(t)
	ownerToken := signup(t, app, "owner@example.com")
	learnerToken := signup(t, app, "learner@example.com")
	courseID := createCourse(t, app, ownerToken, 120)

	status, result := request(t, app, "POST",
		fmt.Sprintf("/api/course/request/%d", courseID), learnerToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	requestID := uint(result["data"].(map[string]interface{})["id"].(float64))

	confirmPath := fmt.Sprintf("/api/course/request/%d", requestID)

	// The learner cannot confirm their own request.
	status, _ = request(t, app, "DELETE", confirmPath, learnerToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = request(t, app, "DELETE", confirmPath, ownerToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	enrolled, err := env.Stores.Enrollments.Exists("learner@example.com", courseID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	// Confirming the consumed request id fails the existence guard.
	status, _ = request(t, app, "DELETE", confirmPath, ownerToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestInviteConfirmOverHTTP(t *testing.T) {
	app, env := setupApp(t)
	ownerToken := signup(t, app, "owner@example.com")
	learnerToken := signup(t, app, "learner@example.com")
	courseID := createCourse(t, app, ownerToken, 120)

	status, result := request(t, app, "POST",
		fmt.Sprintf("/api/course/invite/%d", courseID), ownerToken,
		map[string]interface{}{"email": "learner@example.com"})
	require.Equal(t, fiber.StatusOK, status)
	inviteID := uint(result["data"].(map[string]interface{})["id"].(float64))

	// Inviting an unknown account fails the account-existence guard.
	status, _ = request(t, app, "POST",
		fmt.Sprintf("/api/course/invite/%d", courseID), ownerToken,
		map[string]interface{}{"email": "ghost@example.com"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	confirmPath := fmt.Sprintf("/api/course/invite/%d", inviteID)

	// The owner cannot confirm on the learner's behalf.
	status, _ = request(t, app, "DELETE", confirmPath, ownerToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = request(t, app, "DELETE", confirmPath, learnerToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	enrolled, err := env.Stores.Enrollments.Exists("learner@example.com", courseID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	pending, err := env.Stores.Requests.Find("learner@example.com", courseID, models.DirectionInvite)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestLessonCreationOwnerOnly(t *testing.T) {
	app, _ := setupApp(t)
	ownerToken := signup(t, app, "owner@example.com")
	learnerToken := signup(t, app, "learner@example.com")
	courseID := createCourse(t, app, ownerToken, 0)

	path := fmt.Sprintf("/api/course/lesson/%d", courseID)
	status, _ := request(t, app, "POST", path, learnerToken, map[string]interface{}{
		"title": "Intro",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = request(t, app, "POST", path, ownerToken, map[string]interface{}{
		"title":   "Intro",
		"content": "Welcome",
	})
	assert.Equal(t, fiber.StatusOK, status)
}
