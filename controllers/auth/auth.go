package authController

import (
	"log"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account. The body arrives pre-validated by the auth
// validator middleware.
func Register(env *middleware.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedAccount").(*struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if !ok {
			return utils.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Check if email already exists
		existing, err := env.Stores.Accounts.GetByEmail(reqData.Email)
		if err != nil {
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register account!", nil)
		}
		if existing != nil {
			return utils.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), env.Cfg.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		account := models.Account{
			Name:     reqData.Name,
			Email:    reqData.Email,
			Password: string(hashedPassword),
		}
		if err := env.Stores.Accounts.Create(&account); err != nil {
			log.Printf("Error saving account to database: %v", err)
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register account!", nil)
		}

		return utils.JsonResponse(c, fiber.StatusOK, true, "Account registered successfully!", fiber.Map{
			"email": account.Email,
			"name":  account.Name,
		})
	}
}

// Login verifies credentials, issues a JWT and records the session so the
// token can be revoked later.
func Login(env *middleware.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if !ok {
			return utils.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		account, err := env.Stores.Accounts.GetByEmail(reqData.Email)
		if err != nil {
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
		}
		if account == nil {
			return utils.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong email or password!", nil)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(reqData.Password)); err != nil {
			return utils.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong email or password!", nil)
		}

		ttl := time.Duration(env.Cfg.TokenTTL) * time.Hour
		token, tokenID, err := utils.GenerateJWT(account.Email, env.Cfg.JWTKey, ttl)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
		}

		session := models.Session{
			TokenID:   tokenID,
			Email:     account.Email,
			ExpiresAt: time.Now().Add(ttl),
		}
		if err := env.Stores.Sessions.Create(&session); err != nil {
			log.Printf("Error saving session: %v", err)
			return utils.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
		}

		return utils.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
			"token": token,
			"email": account.Email,
		})
	}
}

// ValidateToken is the terminal of the token-check pipeline: reaching it means
// the token passed.
func ValidateToken(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	return utils.Success("Token is valid!", fiber.Map{
		"email": ctx.Account.Email,
		"name":  ctx.Account.Name,
	})
}

// Logout revokes the presented session token.
func Logout(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if err := env.Stores.Sessions.Revoke(ctx.TokenID); err != nil {
		return utils.ServerError("Failed to logout!")
	}
	return utils.Success("Logged out!", nil)
}

// LogoutAll revokes every session of the account.
func LogoutAll(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if err := env.Stores.Sessions.RevokeAll(ctx.Account.Email); err != nil {
		return utils.ServerError("Failed to logout!")
	}
	return utils.Success("All sessions logged out!", nil)
}
