package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"-" validate:"required"` // bcrypt hash, never serialized
	Name     string `json:"name" validate:"required,valid_name,max=100"`
	Role     string `json:"role" validate:"required,oneof=candidate employer"`
	// Candidate fields
	Headline    string   `json:"headline,omitempty" validate:"max=200"`
	Location    string   `json:"location,omitempty" validate:"max=100"`
	Skills      []string `json:"skills,omitempty" validate:"dive,skill_tag"`
	ResumeURL   string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	SkillPoints int      `json:"skill_points"`
	// Employer fields
	CompanyName string    `json:"company_name,omitempty" validate:"max=150"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to hand to the profile owner or to an
// employer who has unlocked this candidate: credential cleared, email kept.
func (u *User) Sanitized() *User {
	c := *u
	c.Password = ""
	return &c
}

// Public returns a copy safe for search listings: credential and email
// cleared. Email visibility is what a resume unlock grants.
func (u *User) Public() *User {
	c := *u
	c.Password = ""
	c.Email = ""
	return &c
}

// CandidateQuery filters the candidate pool. Skills match is an OR across
// the requested tags.
type CandidateQuery struct {
	MinSkillPoints *int
	Skills         []string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	SearchCandidates(ctx context.Context, query CandidateQuery) ([]User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type CandidateSearchUsecase interface {
	Search(ctx context.Context, query CandidateQuery) ([]User, error)
}
