package postgres

import (
	"context"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type certificateRepo struct {
	db *pgxpool.Pool
}

func NewCertificateRepository(db *pgxpool.Pool) domain.CertificateRepository {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) Create(ctx context.Context, certificate *domain.Certificate) error {
	certificate.ID = uuid.NewString()
	certificate.IssuedAt = time.Now()

	query := `INSERT INTO certificates (id, user_id, course_id, course_name, skill_points_earned, issued_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		certificate.ID, certificate.UserID, certificate.CourseID,
		certificate.CourseName, certificate.SkillPointsEarned, certificate.IssuedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *certificateRepo) GetByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	query := `SELECT id, user_id, course_id, course_name, skill_points_earned, issued_at
              FROM certificates WHERE user_id = $1 ORDER BY issued_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var results []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.UserID, &c.CourseID, &c.CourseName, &c.SkillPointsEarned, &c.IssuedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return results, nil
}
