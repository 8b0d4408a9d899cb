package domain

import (
	"context"
	"time"
)

// Course is immutable after creation: SkillPoints and TotalLessons are
// fixed so certificates snapshot them at issuance anyway.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Instructor   string    `json:"instructor"`
	Thumbnail    string    `json:"thumbnail"`
	Duration     string    `json:"duration"`
	SkillPoints  int       `json:"skill_points"`
	TotalLessons int       `json:"total_lessons"`
	CreatedAt    time.Time `json:"created_at"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id string) (*Course, error)
	GetAll(ctx context.Context) ([]Course, error)
}

type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]Course, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
}
