package domain

import (
	"context"
	"time"
)

// Certificate is an immutable proof of completion. CourseName and
// SkillPointsEarned are snapshots taken at issuance so later course edits
// can never rewrite history.
type Certificate struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	CourseID          string    `json:"course_id"`
	CourseName        string    `json:"course_name"`
	SkillPointsEarned int       `json:"skill_points_earned"`
	IssuedAt          time.Time `json:"issued_at"`
}

type CertificateRepository interface {
	Create(ctx context.Context, certificate *Certificate) error
	GetByUser(ctx context.Context, userID string) ([]Certificate, error)
}
