package memory

import (
	"context"
	"time"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/google/uuid"
)

type unlockRepo struct {
	store *Store
}

func NewResumeUnlockRepository(store *Store) domain.ResumeUnlockRepository {
	return &unlockRepo{store: store}
}

// Create inserts the unlock grant. Check and insert share one write lock, so
// duplicate concurrent unlocks for the same pair collapse to a single record.
func (r *unlockRepo) Create(ctx context.Context, unlock *domain.ResumeUnlock) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{unlock.EmployerID, unlock.CandidateID}
	if _, exists := r.store.unlockByPair[key]; exists {
		return apperror.Conflict("Resume already unlocked")
	}

	unlock.ID = uuid.NewString()
	unlock.UnlockedAt = time.Now()

	r.store.unlocks[unlock.ID] = copyUnlock(unlock)
	r.store.unlockByPair[key] = unlock.ID
	return nil
}

func (r *unlockRepo) Exists(ctx context.Context, employerID, candidateID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.unlockByPair[pairKey{employerID, candidateID}]
	return ok, nil
}

func (r *unlockRepo) ListCandidatesByEmployer(ctx context.Context, employerID string) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var results []domain.User
	for _, u := range r.store.unlocks {
		if u.EmployerID != employerID {
			continue
		}
		if candidate, ok := r.store.users[u.CandidateID]; ok {
			results = append(results, *copyUser(candidate))
		}
	}
	return results, nil
}
