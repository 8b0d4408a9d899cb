package usecase_test

import (
	"context"
	"testing"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/internal/usecase"
	"go-skillmarket-backend/pkg/apperror"
	"go-skillmarket-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) SearchCandidates(ctx context.Context, query domain.CandidateQuery) ([]domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}
func (m *MockCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}
func (m *MockCourseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}
func (m *MockEnrollmentRepo) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) GetByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) UpdateProgress(ctx context.Context, id string, progress, completedLessons int) (*domain.Enrollment, error) {
	args := m.Called(ctx, id, progress, completedLessons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) Complete(ctx context.Context, id string, course *domain.Course) (*domain.CompletionResult, error) {
	args := m.Called(ctx, id, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) Create(ctx context.Context, certificate *domain.Certificate) error {
	return m.Called(ctx, certificate).Error(0)
}
func (m *MockCertificateRepo) GetByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

type MockUnlockRepo struct {
	mock.Mock
}

func (m *MockUnlockRepo) Create(ctx context.Context, unlock *domain.ResumeUnlock) error {
	return m.Called(ctx, unlock).Error(0)
}
func (m *MockUnlockRepo) Exists(ctx context.Context, employerID, candidateID string) (bool, error) {
	args := m.Called(ctx, employerID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *MockUnlockRepo) ListCandidatesByEmployer(ctx context.Context, employerID string) ([]domain.User, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func newEnrollmentUC(userRepo *MockUserRepo, courseRepo *MockCourseRepo, enrollmentRepo *MockEnrollmentRepo) domain.EnrollmentUsecase {
	return usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, userRepo, new(MockCertificateRepo))
}

func TestEnrollRoleGate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when caller is an employer", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "emp1").Return(&domain.User{ID: "emp1", Role: domain.RoleEmployer}, nil)
		uc := newEnrollmentUC(userRepo, new(MockCourseRepo), new(MockEnrollmentRepo))

		_, err := uc.Enroll(ctx, "emp1", "course1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates can enroll")
	})

	t.Run("Should fail when caller does not exist", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "ghost").Return(nil, nil)
		uc := newEnrollmentUC(userRepo, new(MockCourseRepo), new(MockEnrollmentRepo))

		_, err := uc.Enroll(ctx, "ghost", "course1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should fail when course does not exist", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
		courseRepo := new(MockCourseRepo)
		courseRepo.On("GetByID", ctx, "missing").Return(nil, nil)
		uc := newEnrollmentUC(userRepo, courseRepo, new(MockEnrollmentRepo))

		_, err := uc.Enroll(ctx, "cand1", "missing")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Course not found")
	})

	t.Run("Should surface repository conflict on duplicate enrollment", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
		courseRepo := new(MockCourseRepo)
		courseRepo.On("GetByID", ctx, "course1").Return(&domain.Course{ID: "course1"}, nil)
		enrollmentRepo := new(MockEnrollmentRepo)
		enrollmentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Enrollment")).Return(apperror.Conflict("Already enrolled in this course"))
		uc := newEnrollmentUC(userRepo, courseRepo, enrollmentRepo)

		_, err := uc.Enroll(ctx, "cand1", "course1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Already enrolled")
	})
}

func TestUpdateProgressValidation(t *testing.T) {
	ctx := context.Background()
	enrollment := &domain.Enrollment{ID: "enr1", UserID: "cand1", CourseID: "course1"}
	course := &domain.Course{ID: "course1", TotalLessons: 12}

	setup := func() domain.EnrollmentUsecase {
		userRepo := new(MockUserRepo)
		courseRepo := new(MockCourseRepo)
		courseRepo.On("GetByID", ctx, "course1").Return(course, nil)
		enrollmentRepo := new(MockEnrollmentRepo)
		enrollmentRepo.On("GetByID", ctx, "enr1").Return(enrollment, nil)
		return newEnrollmentUC(userRepo, courseRepo, enrollmentRepo)
	}

	t.Run("Should reject progress above 100", func(t *testing.T) {
		_, err := setup().UpdateProgress(ctx, "cand1", "enr1", 101, 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 100")
	})

	t.Run("Should reject negative progress", func(t *testing.T) {
		_, err := setup().UpdateProgress(ctx, "cand1", "enr1", -1, 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 100")
	})

	t.Run("Should reject completed lessons above the course total", func(t *testing.T) {
		_, err := setup().UpdateProgress(ctx, "cand1", "enr1", 50, 13)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 12")
	})

	t.Run("Should fail when caller does not own the enrollment", func(t *testing.T) {
		_, err := setup().UpdateProgress(ctx, "intruder", "enr1", 50, 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own enrollment")
	})
}

func TestCompleteGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when caller does not own the enrollment", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		enrollmentRepo.On("GetByID", ctx, "enr1").Return(&domain.Enrollment{ID: "enr1", UserID: "cand1"}, nil)
		uc := newEnrollmentUC(new(MockUserRepo), new(MockCourseRepo), enrollmentRepo)

		_, err := uc.Complete(ctx, "intruder", "enr1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own enrollment")
	})

	t.Run("Should conflict without touching the repository when already completed", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		enrollmentRepo.On("GetByID", ctx, "enr1").Return(&domain.Enrollment{ID: "enr1", UserID: "cand1", IsCompleted: true}, nil)
		uc := newEnrollmentUC(new(MockUserRepo), new(MockCourseRepo), enrollmentRepo)

		_, err := uc.Complete(ctx, "cand1", "enr1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already completed")
		enrollmentRepo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchPrivilege(t *testing.T) {
	t.Run("Should fail if role is not employer", func(t *testing.T) {
		uc := usecase.NewCandidateSearchUsecase(new(MockUserRepo))
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, "candidate")

		_, err := uc.Search(ctx, domain.CandidateQuery{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers can search")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		uc := usecase.NewCandidateSearchUsecase(new(MockUserRepo))

		_, err := uc.Search(context.Background(), domain.CandidateQuery{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("Should reject negative minimum skill points", func(t *testing.T) {
		uc := usecase.NewCandidateSearchUsecase(new(MockUserRepo))
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		min := -5

		_, err := uc.Search(ctx, domain.CandidateQuery{MinSkillPoints: &min})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("Should strip email and password from results", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		userRepo.On("SearchCandidates", ctx, mock.AnythingOfType("domain.CandidateQuery")).Return([]domain.User{
			{ID: "cand1", Email: "secret@example.com", Password: "hash", Name: "Alice", SkillPoints: 200},
		}, nil)
		uc := usecase.NewCandidateSearchUsecase(userRepo)

		results, err := uc.Search(ctx, domain.CandidateQuery{})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Empty(t, results[0].Email)
		assert.Empty(t, results[0].Password)
		assert.Equal(t, "Alice", results[0].Name)
	})
}

func TestUnlockPrivilege(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail if caller is not an employer", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
		uc := usecase.NewResumeUnlockUsecase(new(MockUnlockRepo), userRepo)

		_, err := uc.Unlock(ctx, "cand1", "cand2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers can unlock")
	})

	t.Run("Should fail when target is not a candidate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "emp1").Return(&domain.User{ID: "emp1", Role: domain.RoleEmployer}, nil)
		userRepo.On("GetByID", ctx, "emp2").Return(&domain.User{ID: "emp2", Role: domain.RoleEmployer}, nil)
		uc := usecase.NewResumeUnlockUsecase(new(MockUnlockRepo), userRepo)

		_, err := uc.Unlock(ctx, "emp1", "emp2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})

	t.Run("Should return the full profile with credential stripped", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "emp1").Return(&domain.User{ID: "emp1", Role: domain.RoleEmployer}, nil)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{
			ID: "cand1", Role: domain.RoleCandidate, Email: "cand@example.com", Password: "hash", ResumeURL: "https://cv.example.com/cand1.pdf",
		}, nil)
		unlockRepo := new(MockUnlockRepo)
		unlockRepo.On("Create", ctx, mock.AnythingOfType("*domain.ResumeUnlock")).Return(nil)
		uc := usecase.NewResumeUnlockUsecase(unlockRepo, userRepo)

		result, err := uc.Unlock(ctx, "emp1", "cand1")
		assert.NoError(t, err)
		assert.Equal(t, "cand@example.com", result.Candidate.Email)
		assert.Equal(t, "https://cv.example.com/cand1.pdf", result.Candidate.ResumeURL)
		assert.Empty(t, result.Candidate.Password)
	})
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()
	validation.RegisterValidators(validate)

	t.Run("Should fail if required fields are missing", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), validate)

		_, err := uc.Register(ctx, &domain.User{Email: "bad", Role: "candidate"})
		assert.Error(t, err)
	})

	t.Run("Should force skill points to zero and hash the password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, 0, u.SkillPoints)
			assert.NotEqual(t, "hunter22", u.Password)
		})
		uc := usecase.NewAuthUsecase(userRepo, validate)

		created, err := uc.Register(ctx, &domain.User{
			Email: "new@example.com", Password: "hunter22", Name: "New User",
			Role: domain.RoleCandidate, SkillPoints: 9999,
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, created.SkillPoints)
		assert.Empty(t, created.Password)
	})
}
