package domain

import (
	"context"
	"time"
)

// Enrollment tracks one candidate's progress through one course. Exactly one
// enrollment exists per (UserID, CourseID) pair; IsCompleted flips false→true
// exactly once and Progress is forced to 100 at that moment.
type Enrollment struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	CourseID         string     `json:"course_id"`
	Progress         int        `json:"progress"` // 0-100
	CompletedLessons int        `json:"completed_lessons"`
	IsCompleted      bool       `json:"is_completed"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// EnrollmentWithCourse is the enriched shape returned by listings so clients
// don't have to fetch each course separately.
type EnrollmentWithCourse struct {
	Enrollment
	Course *Course `json:"course,omitempty"`
}

// CompletionResult bundles the three records mutated by a completion. The
// writes behind it are atomic: a reader never sees the skill points credited
// without the matching certificate, or vice versa.
type CompletionResult struct {
	Enrollment  *Enrollment  `json:"enrollment"`
	Certificate *Certificate `json:"certificate"`
	User        *User        `json:"user"`
}

type EnrollmentRepository interface {
	// Create is an atomic insert-if-absent keyed by (UserID, CourseID).
	// Returns Conflict when the pair already has an enrollment.
	Create(ctx context.Context, enrollment *Enrollment) error
	GetByID(ctx context.Context, id string) (*Enrollment, error)
	GetByUser(ctx context.Context, userID string) ([]Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (*Enrollment, error)
	UpdateProgress(ctx context.Context, id string, progress, completedLessons int) (*Enrollment, error)
	// Complete performs the compound completion write in one critical
	// section: enrollment → completed, user skill points credited, and the
	// certificate issued. Returns Conflict when already completed.
	Complete(ctx context.Context, id string, course *Course) (*CompletionResult, error)
}

type EnrollmentUsecase interface {
	Enroll(ctx context.Context, userID, courseID string) (*Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]EnrollmentWithCourse, error)
	UpdateProgress(ctx context.Context, callerID, enrollmentID string, progress, completedLessons int) (*Enrollment, error)
	Complete(ctx context.Context, callerID, enrollmentID string) (*CompletionResult, error)
	ListCertificates(ctx context.Context, userID string) ([]Certificate, error)
}
