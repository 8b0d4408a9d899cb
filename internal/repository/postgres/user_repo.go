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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	query := `INSERT INTO users (id, email, password, name, role, headline, location, skills, resume_url, skill_points, company_name, created_at)
              VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Password, user.Name, user.Role,
		user.Headline, user.Location, pq.Array(user.Skills), user.ResumeURL,
		user.SkillPoints, user.CompanyName, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

const userColumns = `id, email, password, name, role, headline, location, skills, resume_url, skill_points, company_name, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var skills []string
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
		&user.Headline, &user.Location, pq.Array(&skills), &user.ResumeURL,
		&user.SkillPoints, &user.CompanyName, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Skills = skills
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (r *userRepo) SearchCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.User, error) {
	// skills && $2 is a text[] overlap: any shared tag matches (OR semantics)
	query := `SELECT ` + userColumns + ` FROM users
              WHERE role = 'candidate'
                AND ($1::int IS NULL OR skill_points >= $1)
                AND ($2::text[] IS NULL OR skills && $2)
              ORDER BY skill_points DESC`

	rows, err := r.db.Query(ctx, query, q.MinSkillPoints, pq.Array(q.Skills))
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
