package courseController

import (
	"errors"

	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Enrollment state machine. Each transition is a pipeline terminal over the
// (account, course) pair: NoRelation -> Pending(request|invite) -> Enrolled.
// The pre-checks below are optimizations, the unique indexes on enrollments
// and enrollment_requests are the authoritative guards under concurrency.

// FreeRegister enrolls the caller into a free course directly.
func FreeRegister(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Course.Price != 0 {
		return utils.BadRequest("Course is not free!")
	}

	enrolled, err := env.Stores.Enrollments.Exists(ctx.Account.Email, ctx.Course.ID)
	if err != nil {
		return utils.ServerError("Failed to register course!")
	}
	if enrolled {
		return utils.Conflict("Already enrolled in this course!")
	}

	if err := env.Stores.Enrollments.Create(ctx.Account.Email, ctx.Course.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict("Already enrolled in this course!")
		}
		return utils.ServerError("Failed to register course!")
	}

	return utils.Success("Registered course successfully!", fiber.Map{
		"email":     ctx.Account.Email,
		"course_id": ctx.Course.ID,
	})
}

// Pay charges the caller for a paid course and enrolls on success. The
// password re-check already ran; a declined charge leaves no state behind.
func Pay(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Course.Price == 0 {
		return utils.BadRequest("Course is free, register instead!")
	}

	enrolled, err := env.Stores.Enrollments.Exists(ctx.Account.Email, ctx.Course.ID)
	if err != nil {
		return utils.ServerError("Failed to pay course!")
	}
	if enrolled {
		return utils.Conflict("Already enrolled in this course!")
	}

	if err := env.Payment.Charge(ctx.Account.Email, ctx.Course.Price); err != nil {
		return utils.PaymentFailed("Payment failed!")
	}

	if err := env.Stores.Enrollments.Create(ctx.Account.Email, ctx.Course.ID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict("Already enrolled in this course!")
		}
		return utils.ServerError("Failed to pay course!")
	}

	return utils.Success("Paid course successfully!", fiber.Map{
		"email":     ctx.Account.Email,
		"course_id": ctx.Course.ID,
		"price":     ctx.Course.Price,
	})
}

// Request creates a learner-to-owner pending entry for the course.
func Request(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Course.OwnerEmail == ctx.Account.Email {
		return utils.BadRequest("Cannot request your own course!")
	}

	enrolled, err := env.Stores.Enrollments.Exists(ctx.Account.Email, ctx.Course.ID)
	if err != nil {
		return utils.ServerError("Failed to request course!")
	}
	if enrolled {
		return utils.Conflict("Already enrolled in this course!")
	}

	existing, err := env.Stores.Requests.Find(ctx.Account.Email, ctx.Course.ID, models.DirectionRequest)
	if err != nil {
		return utils.ServerError("Failed to request course!")
	}
	if existing != nil {
		return utils.Conflict("Request already exists!")
	}

	request := models.EnrollmentRequest{
		Email:     ctx.Account.Email,
		CourseID:  ctx.Course.ID,
		Direction: models.DirectionRequest,
	}
	if err := env.Stores.Requests.Create(&request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict("Request already exists!")
		}
		return utils.ServerError("Failed to request course!")
	}

	return utils.Success("Request created successfully!", request)
}

// ConfirmRequest lets the course owner accept a learner's request. Deleting
// the request and creating the enrollment happen in one transaction.
func ConfirmRequest(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Request.Direction != models.DirectionRequest {
		return utils.BadRequest("Not a request!")
	}

	course, err := env.Stores.Courses.GetByID(ctx.Request.CourseID)
	if err != nil {
		return utils.ServerError("Failed to confirm request!")
	}
	if course == nil {
		return utils.BadRequest("Course is not exist!")
	}
	if course.OwnerEmail != ctx.Account.Email {
		return utils.Forbidden("Only the course owner can confirm this request!")
	}

	if outcome := confirm(env, ctx.Request); outcome != nil {
		return outcome
	}

	subject, body := utils.EnrolledEmail(course.Title)
	env.Mailer.SendAsync(ctx.Request.Email, subject, body)

	return utils.Success("Request confirmed successfully!", fiber.Map{
		"email":     ctx.Request.Email,
		"course_id": ctx.Request.CourseID,
	})
}

// Invite creates an owner-to-learner pending entry for the target account.
func Invite(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Course.OwnerEmail != ctx.Account.Email {
		return utils.Forbidden("Only the course owner can invite!")
	}
	if ctx.TargetAccount.Email == ctx.Account.Email {
		return utils.BadRequest("Cannot invite yourself!")
	}

	enrolled, err := env.Stores.Enrollments.Exists(ctx.TargetAccount.Email, ctx.Course.ID)
	if err != nil {
		return utils.ServerError("Failed to invite!")
	}
	if enrolled {
		return utils.Conflict("Account already enrolled in this course!")
	}

	existing, err := env.Stores.Requests.Find(ctx.TargetAccount.Email, ctx.Course.ID, models.DirectionInvite)
	if err != nil {
		return utils.ServerError("Failed to invite!")
	}
	if existing != nil {
		return utils.Conflict("Invite already exists!")
	}

	invite := models.EnrollmentRequest{
		Email:     ctx.TargetAccount.Email,
		CourseID:  ctx.Course.ID,
		Direction: models.DirectionInvite,
	}
	if err := env.Stores.Requests.Create(&invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict("Invite already exists!")
		}
		return utils.ServerError("Failed to invite!")
	}

	subject, body := utils.InviteEmail(ctx.Course.Title, ctx.Account.Email)
	env.Mailer.SendAsync(ctx.TargetAccount.Email, subject, body)

	return utils.Success("Invite created successfully!", invite)
}

// ConfirmInvite lets the invited account accept an owner's invite.
func ConfirmInvite(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Request.Direction != models.DirectionInvite {
		return utils.BadRequest("Not an invite!")
	}
	if ctx.Request.Email != ctx.Account.Email {
		return utils.Forbidden("Only the invited account can confirm this invite!")
	}

	if outcome := confirm(env, ctx.Request); outcome != nil {
		return outcome
	}

	return utils.Success("Invite confirmed successfully!", fiber.Map{
		"email":     ctx.Request.Email,
		"course_id": ctx.Request.CourseID,
	})
}

// confirm atomically deletes the pending request and creates the enrollment.
// A delete that touches no row means a concurrent confirmation already
// settled the pair; a duplicate enrollment at this point means the pair is
// already Enrolled. Both are treated as success, Enrolled is
// idempotent-reachable.
func confirm(env *middleware.Env, request *models.EnrollmentRequest) *utils.Outcome {
	err := env.Stores.Transaction(func(tx *store.Stores) error {
		deleted, err := tx.Requests.Delete(request.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}
		if err := tx.Enrollments.Create(request.Email, request.CourseID); err != nil &&
			!errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return nil
	})
	if err != nil {
		return utils.ServerError("Failed to confirm!")
	}
	return nil
}
