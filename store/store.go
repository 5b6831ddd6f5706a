package store

import "gorm.io/gorm"

// Stores bundles every data-access object the pipelines need. Constructed once
// in main and injected, never reached through a global.
type Stores struct {
	db *gorm.DB

	Accounts    *AccountStore
	Sessions    *SessionStore
	Actions     *ActionStore
	Courses     *CourseStore
	Lessons     *LessonStore
	Knowledges  *KnowledgeStore
	Enrollments *EnrollmentStore
	Requests    *RequestStore
	Scores      *ScoreStore
	Marks       *MarkStore
	Comments    *CommentStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:          db,
		Accounts:    &AccountStore{db: db},
		Sessions:    &SessionStore{db: db},
		Actions:     &ActionStore{db: db},
		Courses:     &CourseStore{db: db},
		Lessons:     &LessonStore{db: db},
		Knowledges:  &KnowledgeStore{db: db},
		Enrollments: &EnrollmentStore{db: db},
		Requests:    &RequestStore{db: db},
		Scores:      &ScoreStore{db: db},
		Marks:       &MarkStore{db: db},
		Comments:    &CommentStore{db: db},
	}
}

// Transaction runs fn against a transaction-scoped copy of every store.
// Confirmation transitions use it to make delete-request + create-enrollment
// one atomic unit.
func (s *Stores) Transaction(fn func(tx *Stores) error) error {
	return s.db.Transaction(func(g *gorm.DB) error {
		return fn(New(g))
	})
}
