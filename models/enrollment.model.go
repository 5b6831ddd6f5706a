package models

import "time"

// EnrollmentRequest directions. Email always names the learner side: for a
// request it is the asking account, for an invite the invited account.
const (
	DirectionRequest = "request"
	DirectionInvite  = "invite"
)

// Enrollment is the fact that an account may access a course. The composite
// unique index is the serialization point: concurrent registrations or
// confirmations for the same pair collide there, not on the pre-checks.
// No DeletedAt column, a soft-deleted row would keep blocking the index.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
}

// EnrollmentRequest is a pending negotiation between a learner and a course
// owner. At most one outstanding row per (email, course, direction).
// Confirmation deletes the row and creates the Enrollment atomically.
type EnrollmentRequest struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_request_triple;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_request_triple;not null"`
	Direction string    `json:"direction" gorm:"uniqueIndex:idx_request_triple;not null"`
}
