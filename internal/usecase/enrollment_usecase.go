package usecase

import (
	"context"
	"fmt"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"
)

type enrollmentUsecase struct {
	enrollmentRepo  domain.EnrollmentRepository
	courseRepo      domain.CourseRepository
	userRepo        domain.UserRepository
	certificateRepo domain.CertificateRepository
}

func NewEnrollmentUsecase(
	enrollmentRepo domain.EnrollmentRepository,
	courseRepo domain.CourseRepository,
	userRepo domain.UserRepository,
	certificateRepo domain.CertificateRepository,
) domain.EnrollmentUsecase {
	return &enrollmentUsecase{
		enrollmentRepo:  enrollmentRepo,
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		certificateRepo: certificateRepo,
	}
}

func (u *enrollmentUsecase) Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if user.Role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can enroll in courses")
	}

	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}

	enrollment := &domain.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	// The repository create is insert-if-absent on (userID, courseID);
	// a duplicate comes back as Conflict even under concurrent enrolls.
	if err := u.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (u *enrollmentUsecase) ListByUser(ctx context.Context, userID string) ([]domain.EnrollmentWithCourse, error) {
	enrollments, err := u.enrollmentRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.EnrollmentWithCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := u.courseRepo.GetByID(ctx, e.CourseID)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.EnrollmentWithCourse{
			Enrollment: e,
			Course:     course,
		})
	}
	return results, nil
}

func (u *enrollmentUsecase) UpdateProgress(ctx context.Context, callerID, enrollmentID string, progress, completedLessons int) (*domain.Enrollment, error) {
	enrollment, err := u.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperror.NotFound("Enrollment not found")
	}
	if enrollment.UserID != callerID {
		return nil, apperror.Forbidden("You can only update your own enrollment")
	}

	// Out-of-range values are rejected, not clamped: clamping would hide
	// client bugs.
	if progress < 0 || progress > 100 {
		return nil, apperror.BadRequest("progress must be between 0 and 100")
	}
	if completedLessons < 0 {
		return nil, apperror.BadRequest("completed_lessons cannot be negative")
	}
	course, err := u.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}
	if completedLessons > course.TotalLessons {
		return nil, apperror.BadRequest(fmt.Sprintf("completed_lessons cannot exceed %d", course.TotalLessons))
	}

	updated, err := u.enrollmentRepo.UpdateProgress(ctx, enrollmentID, progress, completedLessons)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Enrollment not found")
	}
	return updated, nil
}

func (u *enrollmentUsecase) Complete(ctx context.Context, callerID, enrollmentID string) (*domain.CompletionResult, error) {
	enrollment, err := u.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperror.NotFound("Enrollment not found")
	}
	if enrollment.UserID != callerID {
		return nil, apperror.Forbidden("You can only complete your own enrollment")
	}
	// Fast-path idempotency guard; the repository re-checks inside its
	// critical section, so a concurrent double-complete still yields
	// exactly one certificate and one skill-point credit.
	if enrollment.IsCompleted {
		return nil, apperror.Conflict("Course already completed")
	}

	course, err := u.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}

	return u.enrollmentRepo.Complete(ctx, enrollmentID, course)
}

func (u *enrollmentUsecase) ListCertificates(ctx context.Context, userID string) ([]domain.Certificate, error) {
	return u.certificateRepo.GetByUser(ctx, userID)
}
