package usecase

import (
	"context"

	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates a new account. The password arrives in User.Password in
// plain text and is stored as a bcrypt hash. Duplicate emails surface as
// Conflict from the repository's atomic create.
func (u *authUsecase) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := u.validate.Struct(user); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Password = string(hashed)

	// Skill points are earned, never client-set
	user.SkillPoints = 0

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return user.Sanitized(), nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user.Sanitized(), nil
}
