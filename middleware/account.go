package middleware

import (
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"
)

// CheckAccount rejects suspended or missing accounts. Runs after CheckToken,
// which resolves the account.
func CheckAccount(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	if ctx.Account == nil || ctx.Account.IsDeleted || ctx.Account.IsSuspended {
		return ctx, utils.Forbidden("Account is not allowed to perform this action!")
	}
	return ctx, nil
}

// CheckLimitLevelZero guards sensitive routes with the strict allowance.
func CheckLimitLevelZero(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	return checkLimit(env, ctx, env.Cfg.LimitStrict)
}

// CheckLimitLevelOne guards routine routes with the relaxed allowance.
func CheckLimitLevelOne(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	return checkLimit(env, ctx, env.Cfg.LimitRelaxed)
}

// checkLimit counts the account's actions inside the sliding window against
// the severity's base allowance. Accounts at limit level 1 get double the
// allowance. A passing check records the action.
func checkLimit(env *Env, ctx Ctx, base int) (Ctx, *utils.Outcome) {
	allowed := base
	if ctx.Account.LimitLevel == models.LimitLevelOne {
		allowed *= 2
	}

	since := time.Now().Add(-time.Duration(env.Cfg.LimitWindow) * time.Second)
	count, err := env.Stores.Actions.CountSince(ctx.Account.Email, since)
	if err != nil {
		return ctx, utils.ServerError("Failed to check rate limit!")
	}
	if count >= int64(allowed) {
		return ctx, utils.TooManyRequests()
	}

	if err := env.Stores.Actions.Record(ctx.Account.Email); err != nil {
		return ctx, utils.ServerError("Failed to record action!")
	}
	return ctx, nil
}
