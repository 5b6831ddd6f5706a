package middleware

import (
	"strconv"
	"strings"

	"github.com/TrinhDucTiep/Knowledge-Sharing/config"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
)

// Env carries every injected dependency a pipeline can touch.
type Env struct {
	Cfg     *config.Config
	Stores  *store.Stores
	Payment store.PaymentCapability
	Mailer  *utils.Mailer
}

// Ctx is the guard context threaded through a pipeline. It is a value: guards
// return an augmented copy along with nil, or halt with a terminal outcome.
// Guards never see the transport; the fiber adapter extracts token, params and
// body once up front.
type Ctx struct {
	Token   string
	TokenID string
	Params  map[string]string
	Queries map[string]string
	Body    []byte

	Account       *models.Account
	TargetAccount *models.Account
	Course        *models.Course
	Lesson        *models.Lesson
	Knowledge     *models.Knowledge
	Comment       *models.Comment
	Request       *models.EnrollmentRequest
}

// ParamUint resolves a numeric route parameter; ok is false for anything that
// does not parse.
func (ctx Ctx) ParamUint(name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Params[name], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

// Guard is one pipeline primitive: a pure decision over the context that
// either continues with an augmented copy or halts with a terminal outcome.
type Guard func(env *Env, ctx Ctx) (Ctx, *utils.Outcome)

// Handler is the terminal stage of a pipeline.
type Handler func(env *Env, ctx Ctx) *utils.Outcome

// Handle composes an ordered guard chain and a terminal handler into one fiber
// handler. Execution is strictly sequential and fail-fast: the first guard
// that halts determines the response and nothing after it runs. The order the
// route declares is a contract, cheap security checks reject before lookups
// and side effects.
func Handle(env *Env, guards []Guard, handler Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := fromFiber(c)
		for _, guard := range guards {
			next, halt := guard(env, ctx)
			if halt != nil {
				return halt.Send(c)
			}
			ctx = next
		}
		return handler(env, ctx).Send(c)
	}
}

func fromFiber(c *fiber.Ctx) Ctx {
	params := make(map[string]string)
	for _, name := range c.Route().Params {
		params[name] = c.Params(name)
	}

	// fasthttp reuses request buffers after the handler returns
	body := append([]byte(nil), c.Body()...)

	token := ""
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = auth[len("Bearer "):]
	}

	return Ctx{Token: token, Params: params, Queries: c.Queries(), Body: body}
}
