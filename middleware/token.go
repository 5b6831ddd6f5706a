package middleware

import (
	"encoding/json"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"golang.org/x/crypto/bcrypt"
)

// CheckToken validates the bearer token against both its signature and the
// session table, so logged-out tokens die even before their exp claim. On
// success the resolved account is attached to the context.
func CheckToken(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	if ctx.Token == "" {
		return ctx, utils.Unauthorized("Missing or invalid Authorization header")
	}

	email, tokenID, err := utils.ParseJWT(ctx.Token, env.Cfg.JWTKey)
	if err != nil {
		return ctx, utils.Unauthorized("Invalid or expired token")
	}

	session, err := env.Stores.Sessions.GetByTokenID(tokenID)
	if err != nil {
		return ctx, utils.ServerError("Failed to check session!")
	}
	if session == nil || session.Revoked || session.ExpiresAt.Before(time.Now()) {
		return ctx, utils.Unauthorized("Token has been revoked")
	}

	account, err := env.Stores.Accounts.GetByEmail(email)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch account!")
	}
	if account == nil {
		return ctx, utils.Unauthorized("Account not found")
	}

	ctx.Account = account
	ctx.TokenID = tokenID
	return ctx, nil
}

// CheckPassword re-authenticates high-risk operations: even with a valid
// session token the supplied password must match the stored credential.
func CheckPassword(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	reqData := new(struct {
		Password string `json:"password"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Password == "" {
		return ctx, utils.Unauthorized("Password is required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ctx.Account.Password), []byte(reqData.Password)); err != nil {
		return ctx, utils.Unauthorized("Wrong password")
	}

	return ctx, nil
}
