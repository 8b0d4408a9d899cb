package memory

import (
	"context"
	"time"

	"go-skillmarket-backend/internal/domain"

	"github.com/google/uuid"
)

type certificateRepo struct {
	store *Store
}

func NewCertificateRepository(store *Store) domain.CertificateRepository {
	return &certificateRepo{store: store}
}

func (r *certificateRepo) Create(ctx context.Context, certificate *domain.Certificate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	certificate.ID = uuid.NewString()
	certificate.IssuedAt = time.Now()

	r.store.certificates[certificate.ID] = copyCertificate(certificate)
	return nil
}

func (r *certificateRepo) GetByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var results []domain.Certificate
	for _, c := range r.store.certificates {
		if c.UserID == userID {
			results = append(results, *copyCertificate(c))
		}
	}
	return results, nil
}
