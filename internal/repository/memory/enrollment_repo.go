package memory

import (
	"context"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
)

type enrollmentRepo struct {
	store *Store
}

func NewEnrollmentRepository(store *Store) domain.EnrollmentRepository {
	return &enrollmentRepo{store: store}
}

// Create inserts a fresh Active(0,0) enrollment. The pair-existence check and
// the insert happen under the same write lock, so two concurrent enrolls for
// the same (user, course) can never both succeed.
func (r *enrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{enrollment.UserID, enrollment.CourseID}
	if _, exists := r.store.enrollmentByPair[key]; exists {
		return apperror.Conflict("Already enrolled in this course")
	}

	enrollment.ID = uuid.NewString()
	enrollment.Progress = 0
	enrollment.CompletedLessons = 0
	enrollment.IsCompleted = false
	enrollment.EnrolledAt = time.Now()
	enrollment.CompletedAt = nil

	r.store.enrollments[enrollment.ID] = copyEnrollment(enrollment)
	r.store.enrollmentByPair[key] = enrollment.ID
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.enrollments[id]
	if !ok {
		return nil, nil
	}
	return copyEnrollment(e), nil
}

func (r *enrollmentRepo) GetByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var results []domain.Enrollment
	for _, e := range r.store.enrollments {
		if e.UserID == userID {
			results = append(results, *copyEnrollment(e))
		}
	}
	return results, nil
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.enrollmentByPair[pairKey{userID, courseID}]
	if !ok {
		return nil, nil
	}
	return copyEnrollment(r.store.enrollments[id]), nil
}

func (r *enrollmentRepo) UpdateProgress(ctx context.Context, id string, progress, completedLessons int) (*domain.Enrollment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.enrollments[id]
	if !ok {
		return nil, nil
	}

	e.Progress = progress
	e.CompletedLessons = completedLessons
	return copyEnrollment(e), nil
}

// Complete performs the three completion writes under one lock hold: no
// reader can observe the skill points credited without the certificate, or
// the enrollment completed without either.
func (r *enrollmentRepo) Complete(ctx context.Context, id string, course *domain.Course) (*domain.CompletionResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.enrollments[id]
	if !ok {
		return nil, apperror.NotFound("Enrollment not found")
	}
	if e.IsCompleted {
		return nil, apperror.Conflict("Course already completed")
	}

	user, ok := r.store.users[e.UserID]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}

	now := time.Now()
	e.IsCompleted = true
	e.Progress = 100
	e.CompletedAt = &now

	user.SkillPoints += course.SkillPoints

	cert := &domain.Certificate{
		ID:                uuid.NewString(),
		UserID:            e.UserID,
		CourseID:          e.CourseID,
		CourseName:        course.Title,
		SkillPointsEarned: course.SkillPoints,
		IssuedAt:          now,
	}
	r.store.certificates[cert.ID] = cert

	return &domain.CompletionResult{
		Enrollment:  copyEnrollment(e),
		Certificate: copyCertificate(cert),
		User:        copyUser(user),
	}, nil
}
