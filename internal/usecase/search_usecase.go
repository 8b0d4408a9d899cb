package usecase

import (
	"context"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"
)

type searchUsecase struct {
	userRepo domain.UserRepository
}

func NewCandidateSearchUsecase(userRepo domain.UserRepository) domain.CandidateSearchUsecase {
	return &searchUsecase{userRepo: userRepo}
}

// Search returns the candidate pool filtered by minimum skill points and
// skill tags, sorted by skill points descending. Results carry the public
// profile only: email stays hidden until the employer unlocks the resume.
func (u *searchUsecase) Search(ctx context.Context, query domain.CandidateQuery) ([]domain.User, error) {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can search candidates")
	}

	if query.MinSkillPoints != nil && *query.MinSkillPoints < 0 {
		return nil, apperror.BadRequest("min_skill_points cannot be negative")
	}

	candidates, err := u.userRepo.SearchCandidates(ctx, query)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i] = *candidates[i].Public()
	}
	return candidates, nil
}
