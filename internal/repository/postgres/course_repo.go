package postgres

import (
	"context"
	"errors"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, title, description, instructor, thumbnail, duration, skill_points, total_lessons, created_at`

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Thumbnail,
		&c.Duration, &c.SkillPoints, &c.TotalLessons, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	course.ID = uuid.NewString()
	course.CreatedAt = time.Now()
	if course.TotalLessons == 0 {
		course.TotalLessons = 12
	}

	query := `INSERT INTO courses (id, title, description, instructor, thumbnail, duration, skill_points, total_lessons, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.Title, course.Description, course.Instructor,
		course.Thumbnail, course.Duration, course.SkillPoints,
		course.TotalLessons, course.CreatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (r *courseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY created_at`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return courses, nil
}
