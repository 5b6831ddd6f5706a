package courseController

import (
	"encoding/json"
	"strconv"

	"github.com/TrinhDucTiep/Knowledge-Sharing/middleware"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"
	"github.com/TrinhDucTiep/Knowledge-Sharing/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a course owned by the caller. The paired Knowledge row
// is created in the same transaction so the course id is a knowledge id by
// construction.
func CreateCourse(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	reqData := new(struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       uint   `json:"price"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Title == "" {
		return utils.BadRequest("Title is required!")
	}

	var course models.Course
	err := env.Stores.Transaction(func(tx *store.Stores) error {
		kn := models.Knowledge{Title: reqData.Title, Description: reqData.Description}
		if err := tx.Knowledges.Create(&kn); err != nil {
			return err
		}
		course = models.Course{
			OwnerEmail:  ctx.Account.Email,
			Title:       reqData.Title,
			Description: reqData.Description,
			Price:       reqData.Price,
		}
		course.ID = kn.ID
		return tx.Courses.Create(&course)
	})
	if err != nil {
		return utils.ServerError("Failed to create course!")
	}

	return utils.Success("Course created successfully!", course)
}

// CreateLesson adds a lesson to a course the caller owns, again pairing it
// with a Knowledge row sharing the id.
func CreateLesson(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	if ctx.Course.OwnerEmail != ctx.Account.Email {
		return utils.Forbidden("Only the course owner can add lessons!")
	}

	reqData := new(struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	if err := json.Unmarshal(ctx.Body, reqData); err != nil || reqData.Title == "" {
		return utils.BadRequest("Title is required!")
	}

	var lesson models.Lesson
	err := env.Stores.Transaction(func(tx *store.Stores) error {
		kn := models.Knowledge{Title: reqData.Title}
		if err := tx.Knowledges.Create(&kn); err != nil {
			return err
		}
		lesson = models.Lesson{
			CourseID: ctx.Course.ID,
			Title:    reqData.Title,
			Content:  reqData.Content,
		}
		lesson.ID = kn.ID
		return tx.Lessons.Create(&lesson)
	})
	if err != nil {
		return utils.ServerError("Failed to create lesson!")
	}

	return utils.Success("Lesson created successfully!", lesson)
}

// GetCourse returns the course along with whether the caller may access its
// content.
func GetCourse(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	accessible, err := CanAccessCourse(env.Stores, ctx.Account, ctx.Course)
	if err != nil {
		return utils.ServerError("Failed to fetch course!")
	}
	return utils.Success("Course fetched!", fiber.Map{
		"course":     ctx.Course,
		"accessible": accessible,
	})
}

// ListCourses returns a paginated course listing.
func ListCourses(env *middleware.Env, ctx middleware.Ctx) *utils.Outcome {
	page, _ := strconv.Atoi(ctx.Queries["page"])
	limit, _ := strconv.Atoi(ctx.Queries["limit"])
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	courses, total, err := env.Stores.Courses.List(page, limit)
	if err != nil {
		return utils.ServerError("Failed to fetch courses!")
	}

	return utils.Success("Courses fetched!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CanAccessCourse is the course-level access rule: the owner and enrolled
// accounts may access course content.
func CanAccessCourse(stores *store.Stores, account *models.Account, course *models.Course) (bool, error) {
	if course.OwnerEmail == account.Email {
		return true, nil
	}
	return stores.Enrollments.Exists(account.Email, course.ID)
}
