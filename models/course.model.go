package models

import "gorm.io/gorm"

// Course shares its id with the Knowledge row created alongside it. Price 0
// means the course is open for free registration.
type Course struct {
	gorm.Model
	OwnerEmail  string `json:"owner_email" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       uint   `json:"price" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Lesson belongs to exactly one course and, like Course, shares its id with a
// Knowledge row. Access to a lesson derives from its owning course.
type Lesson struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
