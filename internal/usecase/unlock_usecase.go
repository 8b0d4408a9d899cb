package usecase

import (
	"context"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"
)

type unlockUsecase struct {
	unlockRepo domain.ResumeUnlockRepository
	userRepo   domain.UserRepository
}

func NewResumeUnlockUsecase(unlockRepo domain.ResumeUnlockRepository, userRepo domain.UserRepository) domain.ResumeUnlockUsecase {
	return &unlockUsecase{
		unlockRepo: unlockRepo,
		userRepo:   userRepo,
	}
}

func (u *unlockUsecase) requireEmployer(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can unlock resumes")
	}
	return nil
}

// Unlock grants the employer visibility into the candidate's full profile.
// BILLING STUB: no payment is charged here. A real integration must place
// the charge before the repository create and refund on Conflict.
func (u *unlockUsecase) Unlock(ctx context.Context, employerID, candidateID string) (*domain.UnlockResult, error) {
	if err := u.requireEmployer(ctx, employerID); err != nil {
		return nil, err
	}

	candidate, err := u.userRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil || candidate.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}

	unlock := &domain.ResumeUnlock{
		EmployerID:  employerID,
		CandidateID: candidateID,
	}
	// Insert-if-absent on the (employer, candidate) pair; a duplicate or
	// concurrent second unlock comes back as Conflict with no second record.
	if err := u.unlockRepo.Create(ctx, unlock); err != nil {
		return nil, err
	}

	return &domain.UnlockResult{
		Unlock:    unlock,
		Candidate: candidate.Sanitized(),
	}, nil
}

func (u *unlockUsecase) IsUnlocked(ctx context.Context, employerID, candidateID string) (bool, error) {
	if err := u.requireEmployer(ctx, employerID); err != nil {
		return false, err
	}
	return u.unlockRepo.Exists(ctx, employerID, candidateID)
}

func (u *unlockUsecase) ListUnlockedCandidates(ctx context.Context, employerID string) ([]domain.User, error) {
	if err := u.requireEmployer(ctx, employerID); err != nil {
		return nil, err
	}

	candidates, err := u.unlockRepo.ListCandidatesByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i] = *candidates[i].Sanitized()
	}
	return candidates, nil
}
