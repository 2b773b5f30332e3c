package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

func NewUserUseCase(userRepo repository.UserRepository, bcryptCost int) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, bcryptCost: bcryptCost}
}

type RegisterUserInput struct {
	Email    string
	Password string
	Profile  *entity.UserProfile
}

func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		IsActive:     true,
		Profile:      input.Profile,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUser looks up a single user by id or email; either one is required.
func (uc *UserUseCase) GetUser(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.User, error) {
	if id == "" && email == "" {
		return nil, errors.Validation("id or email is required", nil)
	}
	return uc.userRepo.GetByIDOrEmail(ctx, id, email, viewer)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, params map[string]string, page repository.Page, viewer entity.Viewer) ([]*entity.User, int64, error) {
	if !viewer.Privileged() {
		return nil, 0, errors.Forbidden("Admin access required", nil)
	}

	query, err := ParseAccountQuery(params)
	if err != nil {
		return nil, 0, err
	}
	return uc.userRepo.List(ctx, query, ParseSort(params), page, viewer)
}

func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, payload map[string]interface{}, viewer entity.Viewer) (*entity.User, error) {
	if len(payload) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}
	if !viewer.Privileged() {
		if viewer.ID != id {
			return nil, errors.Forbidden("You can only update your own account", nil)
		}
		if violations := protectedFieldViolations(payload); len(violations) > 0 {
			return nil, errors.PermissionDenied(violations...)
		}
	}

	if err := rehashPassword(payload, uc.bcryptCost); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.Update(ctx, id, flattenUpdate(payload))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeleteUser flips the soft-delete flag; the record is never removed.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string, viewer entity.Viewer) (*entity.User, error) {
	if !viewer.Privileged() && viewer.ID != id {
		return nil, errors.Forbidden("You can only delete your own account", nil)
	}
	return uc.userRepo.SoftDelete(ctx, id)
}

// rehashPassword swaps a plaintext "password" key for a bcrypt hash. The
// hash key itself is protected, so clients can never write one directly.
func rehashPassword(payload map[string]interface{}, cost int) error {
	raw, ok := payload["password"]
	if !ok {
		return nil
	}
	delete(payload, "password")

	password, ok := raw.(string)
	if !ok || len(password) < 8 {
		return errors.Validation("password must be a string of at least 8 characters", nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}
	payload["passwordHash"] = string(hash)
	return nil
}
