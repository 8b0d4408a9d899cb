package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := r.store.usersByEmail[email]; exists {
		return apperror.Conflict("User with this email already exists")
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	r.store.users[user.ID] = copyUser(user)
	r.store.usersByEmail[email] = user.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return copyUser(r.store.users[id]), nil
}

func (r *userRepo) SearchCandidates(ctx context.Context, query domain.CandidateQuery) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var results []domain.User
	for _, u := range r.store.users {
		if u.Role != domain.RoleCandidate {
			continue
		}
		if query.MinSkillPoints != nil && u.SkillPoints < *query.MinSkillPoints {
			continue
		}
		if len(query.Skills) > 0 && !sharesSkill(u.Skills, query.Skills) {
			continue
		}
		results = append(results, *copyUser(u))
	}

	// Sort by skill points descending; tie order is unspecified.
	sort.Slice(results, func(i, j int) bool {
		return results[i].SkillPoints > results[j].SkillPoints
	})

	return results, nil
}

// sharesSkill reports whether the candidate has at least one of the wanted
// tags (OR match, case-insensitive).
func sharesSkill(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
