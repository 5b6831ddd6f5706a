package accountController

import (
	"encoding/json"

	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
)

// Profile returns the authenticated account.
func Profile(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	return utils.Success("Profile fetched!", fiber.Map{
		"email":       ctx.Account.Email,
		"name":        ctx.Account.Name,
		"role":        ctx.Account.Role,
		"limit_level": ctx.Account.LimitLevel,
		"balance":     ctx.Account.Balance,
	})
}

// Deposit funds the account balance used by paid course registration. Runs
// behind the password re-check.
func Deposit(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	reqData := new(struct {
		Amount uint `json:"amount"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Amount == 0 {
		return utils.BadRequest("Amount must be positive!")
	}

	balanceBefore := ctx.Account.Balance
	ctx.Account.Balance = balanceBefore + reqData.Amount
	if err := env.Stores.Accounts.Save(ctx.Account); err != nil {
		return utils.ServerError("Failed to update balance!")
	}

	return utils.Success("Deposit successful!", fiber.Map{
		"balanceBefore": balanceBefore,
		"balanceAfter":  ctx.Account.Balance,
	})
}

// SetLimitLevel changes the rate-limit level of the target account. Admin
// only; the target arrives resolved by CheckAccountExisted.
func SetLimitLevel(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Account.Role != "ADMIN" {
		return utils.Forbidden("Admin role required!")
	}

	reqData := new(struct {
		Level *int `json:"level"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Level == nil {
		return utils.BadRequest("Level is required!")
	}
	if *reqData.Level != models.LimitLevelZero && *reqData.Level != models.LimitLevelOne {
		return utils.BadRequest("Level is not valid!")
	}

	ctx.TargetAccount.LimitLevel = *reqData.Level
	if err := env.Stores.Accounts.Save(ctx.TargetAccount); err != nil {
		return utils.ServerError("Failed to update limit level!")
	}

	return utils.Success("Limit level updated!", fiber.Map{
		"email":       ctx.TargetAccount.Email,
		"limit_level": ctx.TargetAccount.LimitLevel,
	})
}
