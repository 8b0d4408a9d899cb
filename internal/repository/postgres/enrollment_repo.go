package postgres

import (
	"context"
	"errors"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type enrollmentRepo struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) domain.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

const enrollmentColumns = `id, user_id, course_id, progress, completed_lessons, is_completed, enrolled_at, completed_at`

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(
		&e.ID, &e.UserID, &e.CourseID, &e.Progress, &e.CompletedLessons,
		&e.IsCompleted, &e.EnrolledAt, &e.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create relies on the unique index over (user_id, course_id) to close the
// check-then-insert race: a concurrent duplicate surfaces as 23505.
func (r *enrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	enrollment.ID = uuid.NewString()
	enrollment.Progress = 0
	enrollment.CompletedLessons = 0
	enrollment.IsCompleted = false
	enrollment.EnrolledAt = time.Now()
	enrollment.CompletedAt = nil

	query := `INSERT INTO enrollments (id, user_id, course_id, progress, completed_lessons, is_completed, enrolled_at)
              VALUES ($1, $2, $3, 0, 0, false, $4)`
	_, err := r.db.Exec(ctx, query, enrollment.ID, enrollment.UserID, enrollment.CourseID, enrollment.EnrolledAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Already enrolled in this course")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return e, nil
}

func (r *enrollmentRepo) GetByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at`, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var results []domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		results = append(results, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return results, nil
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE user_id = $1 AND course_id = $2`, userID, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return e, nil
}

func (r *enrollmentRepo) UpdateProgress(ctx context.Context, id string, progress, completedLessons int) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRow(ctx,
		`UPDATE enrollments SET progress = $2, completed_lessons = $3 WHERE id = $1 RETURNING `+enrollmentColumns,
		id, progress, completedLessons))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return e, nil
}

// Complete runs the three completion writes in one transaction. The row lock
// taken by FOR UPDATE makes the already-completed re-check race-free.
func (r *enrollmentRepo) Complete(ctx context.Context, id string, course *domain.Course) (*domain.CompletionResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	e, err := scanEnrollment(tx.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("Enrollment not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if e.IsCompleted {
		return nil, apperror.Conflict("Course already completed")
	}

	now := time.Now()
	e, err = scanEnrollment(tx.QueryRow(ctx,
		`UPDATE enrollments SET is_completed = true, progress = 100, completed_at = $2 WHERE id = $1 RETURNING `+enrollmentColumns,
		id, now))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var user domain.User
	var skills []string
	err = tx.QueryRow(ctx,
		`UPDATE users SET skill_points = skill_points + $2 WHERE id = $1 RETURNING `+userColumns,
		e.UserID, course.SkillPoints).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
		&user.Headline, &user.Location, pq.Array(&skills), &user.ResumeURL,
		&user.SkillPoints, &user.CompanyName, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Skills = skills

	cert := &domain.Certificate{
		ID:                uuid.NewString(),
		UserID:            e.UserID,
		CourseID:          e.CourseID,
		CourseName:        course.Title,
		SkillPointsEarned: course.SkillPoints,
		IssuedAt:          now,
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO certificates (id, user_id, course_id, course_name, skill_points_earned, issued_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		cert.ID, cert.UserID, cert.CourseID, cert.CourseName, cert.SkillPointsEarned, cert.IssuedAt)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CompletionResult{
		Enrollment:  e,
		Certificate: cert,
		User:        &user,
	}, nil
}
