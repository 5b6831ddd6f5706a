package store

import (
	"errors"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"

	"gorm.io/gorm"
)

type CourseStore struct {
	db *gorm.DB
}

func (s *CourseStore) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Where("id = ? AND is_deleted = false", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseStore) Create(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *CourseStore) List(page, limit int) ([]models.Course, int64, error) {
	query := s.db.Model(&models.Course{}).Where("is_deleted = false")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

type LessonStore struct {
	db *gorm.DB
}

func (s *LessonStore) GetByID(id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := s.db.Where("id = ? AND is_deleted = false", id).First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *LessonStore) Create(lesson *models.Lesson) error {
	return s.db.Create(lesson).Error
}

type KnowledgeStore struct {
	db *gorm.DB
}

func (s *KnowledgeStore) GetByID(id uint) (*models.Knowledge, error) {
	var kn models.Knowledge
	err := s.db.Where("id = ? AND is_deleted = false", id).First(&kn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kn, nil
}

func (s *KnowledgeStore) Create(kn *models.Knowledge) error {
	return s.db.Create(kn).Error
}
