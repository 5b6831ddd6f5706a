package knowledgeController

import (
	courseController "github.com/TrinhDucTiep/Knowledge-Sharing/controllers/course"
	"github.com/TrinhDucTiep/Knowledge-Sharing/models"
	"github.com/TrinhDucTiep/Knowledge-Sharing/store"
)

// CanAccess decides whether the account may view or annotate the knowledge
// unit with the given id. Courses and lessons share the knowledge id space;
// the course table is probed first and wins on a collision. A lesson derives
// its accessibility from its owning course, never independently. Unknown ids
// are simply inaccessible, existence checking is the caller's job.
func CanAccess(stores *store.Stores, account *models.Account, knowledgeID uint) (bool, error) {
	course, err := stores.Courses.GetByID(knowledgeID)
	if err != nil {
		return false, err
	}
	if course != nil {
		return courseController.CanAccessCourse(stores, account, course)
	}

	lesson, err := stores.Lessons.GetByID(knowledgeID)
	if err != nil {
		return false, err
	}
	if lesson == nil {
		return false, nil
	}

	course, err = stores.Courses.GetByID(lesson.CourseID)
	if err != nil {
		return false, err
	}
	if course == nil {
		return false, nil
	}
	return courseController.CanAccessCourse(stores, account, course)
}
