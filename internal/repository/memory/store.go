package memory

import (
	"sync"

	"go-skillmarket-backend/internal/domain"
)

// pairKey addresses the two uniqueness invariants: one enrollment per
// (user, course) and one unlock per (employer, candidate).
type pairKey struct {
	a string
	b string
}

// Store is the in-memory backing for all five entity repositories. A single
// RWMutex serializes every mutation, so the check-then-insert creates and the
// compound completion write are atomic without any cross-repository
// coordination. Records are copied on the way in and out; callers never hold
// a pointer into the store.
type Store struct {
	mu sync.RWMutex

	users        map[string]*domain.User
	courses      map[string]*domain.Course
	enrollments  map[string]*domain.Enrollment
	certificates map[string]*domain.Certificate
	unlocks      map[string]*domain.ResumeUnlock

	usersByEmail     map[string]string
	enrollmentByPair map[pairKey]string
	unlockByPair     map[pairKey]string
}

func NewStore() *Store {
	return &Store{
		users:            make(map[string]*domain.User),
		courses:          make(map[string]*domain.Course),
		enrollments:      make(map[string]*domain.Enrollment),
		certificates:     make(map[string]*domain.Certificate),
		unlocks:          make(map[string]*domain.ResumeUnlock),
		usersByEmail:     make(map[string]string),
		enrollmentByPair: make(map[pairKey]string),
		unlockByPair:     make(map[pairKey]string),
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.Skills != nil {
		c.Skills = append([]string(nil), u.Skills...)
	}
	return &c
}

func copyCourse(co *domain.Course) *domain.Course {
	c := *co
	return &c
}

func copyEnrollment(e *domain.Enrollment) *domain.Enrollment {
	c := *e
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

func copyCertificate(ce *domain.Certificate) *domain.Certificate {
	c := *ce
	return &c
}

func copyUnlock(u *domain.ResumeUnlock) *domain.ResumeUnlock {
	c := *u
	return &c
}
