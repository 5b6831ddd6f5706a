package store

import (
	"errors"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"

	"gorm.io/gorm"
)

type EnrollmentStore struct {
	db *gorm.DB
}

func (s *EnrollmentStore) Exists(email string, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("email = ? AND course_id = ?", email, courseID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the enrollment row. A gorm.ErrDuplicatedKey return means the
// pair is already enrolled; callers decide whether that is a Conflict or an
// idempotent success.
func (s *EnrollmentStore) Create(email string, courseID uint) error {
	return s.db.Create(&models.Enrollment{Email: email, CourseID: courseID}).Error
}

func (s *EnrollmentStore) ListByEmail(email string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("email = ?", email).Order("created_at desc").Find(&enrollments).Error
	return enrollments, err
}

type RequestStore struct {
	db *gorm.DB
}

func (s *RequestStore) GetByID(id uint) (*models.EnrollmentRequest, error) {
	var req models.EnrollmentRequest
	err := s.db.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Find returns the outstanding request for the triple, or nil, nil.
func (s *RequestStore) Find(email string, courseID uint, direction string) (*models.EnrollmentRequest, error) {
	var req models.EnrollmentRequest
	err := s.db.Where("email = ? AND course_id = ? AND direction = ?", email, courseID, direction).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *RequestStore) Create(req *models.EnrollmentRequest) error {
	return s.db.Create(req).Error
}

// Delete removes the request row and reports whether a row was actually
// deleted. Zero rows means a concurrent confirmation got there first.
func (s *RequestStore) Delete(id uint) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&models.EnrollmentRequest{})
	return result.RowsAffected > 0, result.Error
}

func (s *RequestStore) ListForCourse(courseID uint, direction string) ([]models.EnrollmentRequest, error) {
	var requests []models.EnrollmentRequest
	err := s.db.Where("course_id = ? AND direction = ?", courseID, direction).
		Order("created_at desc").Find(&requests).Error
	return requests, err
}
