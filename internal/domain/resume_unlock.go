package domain

import (
	"context"
	"time"
)

// ResumeUnlock is a one-way grant letting one employer view one candidate's
// full profile. At most one unlock exists per (EmployerID, CandidateID) pair.
type ResumeUnlock struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employer_id"`
	CandidateID string    `json:"candidate_id"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// UnlockResult pairs the grant with the candidate's full profile, credential
// stripped.
type UnlockResult struct {
	Unlock    *ResumeUnlock `json:"unlock"`
	Candidate *User         `json:"candidate"`
}

type ResumeUnlockRepository interface {
	// Create is an atomic insert-if-absent keyed by (EmployerID, CandidateID).
	// Returns Conflict when the pair is already unlocked.
	Create(ctx context.Context, unlock *ResumeUnlock) error
	Exists(ctx context.Context, employerID, candidateID string) (bool, error)
	ListCandidatesByEmployer(ctx context.Context, employerID string) ([]User, error)
}

type ResumeUnlockUsecase interface {
	Unlock(ctx context.Context, employerID, candidateID string) (*UnlockResult, error)
	IsUnlocked(ctx context.Context, employerID, candidateID string) (bool, error)
	ListUnlockedCandidates(ctx context.Context, employerID string) ([]User, error)
}
