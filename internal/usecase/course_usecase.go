package usecase

import (
	"context"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
}

func NewCourseUsecase(courseRepo domain.CourseRepository) domain.CourseUsecase {
	return &courseUsecase{courseRepo: courseRepo}
}

func (u *courseUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return u.courseRepo.GetAll(ctx)
}

func (u *courseUsecase) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}
	return course, nil
}
