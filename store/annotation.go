package store

import (
	"errors"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"

	"gorm.io/gorm"
)

type ScoreStore struct {
	db *gorm.DB
}

func (s *ScoreStore) Find(email string, knowledgeID uint) (*models.Score, error) {
	var score models.Score
	err := s.db.Where("email = ? AND knowledge_id = ?", email, knowledgeID).First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (s *ScoreStore) Insert(score *models.Score) error {
	return s.db.Create(score).Error
}

// Update rewrites value and timestamp in place for the pair.
func (s *ScoreStore) Update(email string, knowledgeID uint, value int, at time.Time) error {
	return s.db.Model(&models.Score{}).
		Where("email = ? AND knowledge_id = ?", email, knowledgeID).
		Updates(map[string]interface{}{"value": value, "time": at}).Error
}

func (s *ScoreStore) CountFor(email string, knowledgeID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Score{}).
		Where("email = ? AND knowledge_id = ?", email, knowledgeID).
		Count(&count).Error
	return count, err
}

type MarkStore struct {
	db *gorm.DB
}

func (s *MarkStore) Find(email string, knowledgeID uint) (*models.Mark, error) {
	var mark models.Mark
	err := s.db.Where("email = ? AND knowledge_id = ?", email, knowledgeID).First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

func (s *MarkStore) Insert(mark *models.Mark) error {
	return s.db.Create(mark).Error
}

func (s *MarkStore) Delete(email string, knowledgeID uint) error {
	return s.db.Where("email = ? AND knowledge_id = ?", email, knowledgeID).
		Delete(&models.Mark{}).Error
}

type CommentStore struct {
	db *gorm.DB
}

func (s *CommentStore) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentStore) Insert(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *CommentStore) Update(comment *models.Comment) error {
	return s.db.Save(comment).Error
}

func (s *CommentStore) Delete(id uint) error {
	return s.db.Delete(&models.Comment{}, id).Error
}

func (s *CommentStore) ListForKnowledge(knowledgeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("knowledge_id = ?", knowledgeID).
		Order("created_at desc").Find(&comments).Error
	return comments, err
}
