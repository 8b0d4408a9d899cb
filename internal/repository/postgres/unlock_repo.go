package postgres

import (
	"context"
	"errors"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type unlockRepo struct {
	db *pgxpool.Pool
}

func NewResumeUnlockRepository(db *pgxpool.Pool) domain.ResumeUnlockRepository {
	return &unlockRepo{db: db}
}

// Create relies on the unique index over (employer_id, candidate_id) so
// concurrent duplicate unlocks collapse to one row.
func (r *unlockRepo) Create(ctx context.Context, unlock *domain.ResumeUnlock) error {
	unlock.ID = uuid.NewString()
	unlock.UnlockedAt = time.Now()

	query := `INSERT INTO unlocked_resumes (id, employer_id, candidate_id, unlocked_at)
              VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, unlock.ID, unlock.EmployerID, unlock.CandidateID, unlock.UnlockedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Resume already unlocked")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *unlockRepo) Exists(ctx context.Context, employerID, candidateID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM unlocked_resumes WHERE employer_id = $1 AND candidate_id = $2)`,
		employerID, candidateID).Scan(&exists)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

func (r *unlockRepo) ListCandidatesByEmployer(ctx context.Context, employerID string) ([]domain.User, error) {
	query := `SELECT u.id, u.email, u.password, u.name, u.role, u.headline, u.location,
                     u.skills, u.resume_url, u.skill_points, u.company_name, u.created_at
              FROM users u
              JOIN unlocked_resumes ur ON ur.candidate_id = u.id
              WHERE ur.employer_id = $1
              ORDER BY ur.unlocked_at`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var results []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		results = append(results, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return results, nil
}
