package models

import (
	"time"

	"gorm.io/gorm"
)

// Score is one account's rating of one knowledge unit, upserted in place.
// At most one row per (email, knowledge_id).
type Score struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_score_pair;not null"`
	Knowledge uint      `json:"knowledge_id" gorm:"column:knowledge_id;uniqueIndex:idx_score_pair;not null"`
	Value     int       `json:"value"`
	Time      time.Time `json:"time"`
}

// Mark is a presence/absence bookmark with toggle semantics: marking twice
// keeps one row, unmarking removes it. Hard-deleted so the unique index never
// blocks a re-mark.
type Mark struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_mark_pair;not null"`
	Knowledge uint      `json:"knowledge_id" gorm:"column:knowledge_id;uniqueIndex:idx_mark_pair;not null"`
}

// Comment is free text owned by its author; only the author may edit or
// delete it.
type Comment struct {
	gorm.Model
	Email     string    `json:"email" gorm:"index;not null"`
	Knowledge uint      `json:"knowledge_id" gorm:"column:knowledge_id;index;not null"`
	Content   string    `json:"content"`
	Time      time.Time `json:"time"`
}
