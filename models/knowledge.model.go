package models

import "gorm.io/gorm"

// Knowledge is an annotatable content node. Every course and every lesson owns
// exactly one Knowledge row and shares its id, so marks, scores and comments
// can target either kind through a single id space.
type Knowledge struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
