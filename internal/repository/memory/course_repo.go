package memory

import (
	"context"
	"time"

	"go-skillmarket-backend/internal/domain"

	"github.com/google/uuid"
)

type courseRepo struct {
	store *Store
}

func NewCourseRepository(store *Store) domain.CourseRepository {
	return &courseRepo{store: store}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	course.ID = uuid.NewString()
	course.CreatedAt = time.Now()
	if course.TotalLessons == 0 {
		course.TotalLessons = 12
	}

	r.store.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	course, ok := r.store.courses[id]
	if !ok {
		return nil, nil
	}
	return copyCourse(course), nil
}

func (r *courseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	courses := make([]domain.Course, 0, len(r.store.courses))
	for _, c := range r.store.courses {
		courses = append(courses, *copyCourse(c))
	}
	return courses, nil
}
