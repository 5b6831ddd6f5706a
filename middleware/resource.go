package middleware

import (
	"encoding/json"

	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"
)

// Resource-existence guards. Each resolves the entity named by its route
// parameter and attaches it, halting with a bad-request outcome when the id
// does not resolve. They run after the auth and limit guards so lookups are
// never spent on rejected requests.

func CheckCourseExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	id, ok := ctx.ParamUint("courseid")
	if !ok {
		return ctx, utils.BadRequest("Invalid course id!")
	}
	course, err := env.Stores.Courses.GetByID(id)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch course!")
	}
	if course == nil {
		return ctx, utils.BadRequest("Course is not exist!")
	}
	ctx.Course = course
	return ctx, nil
}

func CheckLessonExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	id, ok := ctx.ParamUint("lessonid")
	if !ok {
		return ctx, utils.BadRequest("Invalid lesson id!")
	}
	lesson, err := env.Stores.Lessons.GetByID(id)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch lesson!")
	}
	if lesson == nil {
		return ctx, utils.BadRequest("Lesson is not exist!")
	}
	ctx.Lesson = lesson
	return ctx, nil
}

func CheckKnowledgeExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	id, ok := ctx.ParamUint("knid")
	if !ok {
		return ctx, utils.BadRequest("Invalid knowledge id!")
	}
	kn, err := env.Stores.Knowledges.GetByID(id)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch knowledge!")
	}
	if kn == nil {
		return ctx, utils.BadRequest("Knowledge is not exist!")
	}
	ctx.Knowledge = kn
	return ctx, nil
}

func CheckCommentExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	id, ok := ctx.ParamUint("commentid")
	if !ok {
		return ctx, utils.BadRequest("Invalid comment id!")
	}
	comment, err := env.Stores.Comments.GetByID(id)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch comment!")
	}
	if comment == nil {
		return ctx, utils.BadRequest("Comment is not exist!")
	}
	ctx.Comment = comment
	return ctx, nil
}

func CheckRequestExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	id, ok := ctx.ParamUint("requestid")
	if !ok {
		return ctx, utils.BadRequest("Invalid request id!")
	}
	request, err := env.Stores.Requests.GetByID(id)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch request!")
	}
	if request == nil {
		return ctx, utils.BadRequest("Request is not exist!")
	}
	ctx.Request = request
	return ctx, nil
}

// CheckAccountExisted resolves the account named in the request body (used by
// invite, where the owner targets another account) and attaches it as
// TargetAccount.
func CheckAccountExisted(env *Env, ctx Ctx) (Ctx, *utils.Outcome) {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Email == "" {
		return ctx, utils.BadRequest("Email is required!")
	}

	account, err := env.Stores.Accounts.GetByEmail(reqData.Email)
	if err != nil {
		return ctx, utils.ServerError("Failed to fetch account!")
	}
	if account == nil {
		return ctx, utils.BadRequest("Account is not exist!")
	}
	ctx.TargetAccount = account
	return ctx, nil
}
