package store

import (
	"errors"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"

	"gorm.io/gorm"
)

type AccountStore struct {
	db *gorm.DB
}

// GetByEmail returns nil, nil when no live account has the email.
func (s *AccountStore) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := s.db.Where("email = ? AND is_deleted = false", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountStore) Create(account *models.Account) error {
	return s.db.Create(account).Error
}

func (s *AccountStore) Save(account *models.Account) error {
	return s.db.Save(account).Error
}

type SessionStore struct {
	db *gorm.DB
}

func (s *SessionStore) Create(session *models.Session) error {
	return s.db.Create(session).Error
}

// GetByTokenID returns nil, nil for unknown token ids.
func (s *SessionStore) GetByTokenID(tokenID string) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("token_id = ?", tokenID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Revoke(tokenID string) error {
	return s.db.Model(&models.Session{}).Where("token_id = ?", tokenID).
		Update("revoked", true).Error
}

func (s *SessionStore) RevokeAll(email string) error {
	return s.db.Model(&models.Session{}).Where("email = ?", email).
		Update("revoked", true).Error
}

// PurgeStale removes expired and revoked sessions outright.
func (s *SessionStore) PurgeStale(now time.Time) error {
	return s.db.Where("expires_at < ? OR revoked = true", now).
		Delete(&models.Session{}).Error
}

type ActionStore struct {
	db *gorm.DB
}

// Record logs one rate-limited action for the account.
func (s *ActionStore) Record(email string) error {
	return s.db.Create(&models.ActionLog{Email: email, CreatedAt: time.Now()}).Error
}

// CountSince counts the account's actions inside the sliding window.
func (s *ActionStore) CountSince(email string, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.ActionLog{}).
		Where("email = ? AND created_at >= ?", email, since).
		Count(&count).Error
	return count, err
}

func (s *ActionStore) PurgeBefore(cutoff time.Time) error {
	return s.db.Where("created_at < ?", cutoff).Delete(&models.ActionLog{}).Error
}
