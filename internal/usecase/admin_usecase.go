package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type AdminUseCase struct {
	adminRepo  repository.AdminRepository
	bcryptCost int
}

func NewAdminUseCase(adminRepo repository.AdminRepository, bcryptCost int) *AdminUseCase {
	return &AdminUseCase{adminRepo: adminRepo, bcryptCost: bcryptCost}
}

type CreateAdminInput struct {
	Email       string
	Password    string
	Profile     *entity.AdminProfile
	Permissions []string
}

// CreateAdmin always issues the plain admin role. superAdmin accounts are
// provisioned out of band, never through the API.
func (uc *AdminUseCase) CreateAdmin(ctx context.Context, input CreateAdminInput, viewer entity.Viewer) (*entity.Admin, error) {
	if !viewer.SuperAdmin() {
		return nil, errors.Forbidden("Super admin access required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	admin := &entity.Admin{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		Profile:      input.Profile,
		Permissions:  input.Permissions,
	}
	if admin.Permissions == nil {
		admin.Permissions = []string{}
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	admin.PasswordHash = ""
	return admin, nil
}

// GetAdmin hides superAdmin records from non-superAdmin viewers; a hidden
// record reads as not found.
func (uc *AdminUseCase) GetAdmin(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Admin, error) {
	if !viewer.Privileged() {
		return nil, errors.Forbidden("Admin access required", nil)
	}
	if id == "" && email == "" {
		return nil, errors.Validation("id or email is required", nil)
	}
	return uc.adminRepo.GetByIDOrEmail(ctx, id, email, viewer)
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context, params map[string]string, page repository.Page, viewer entity.Viewer) ([]*entity.Admin, int64, error) {
	if !viewer.Privileged() {
		return nil, 0, errors.Forbidden("Admin access required", nil)
	}

	query, err := ParseAccountQuery(params)
	if err != nil {
		return nil, 0, err
	}
	return uc.adminRepo.List(ctx, query, ParseSort(params), page, viewer)
}

func (uc *AdminUseCase) UpdateAdmin(ctx context.Context, id string, payload map[string]interface{}, viewer entity.Viewer) (*entity.Admin, error) {
	if len(payload) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}
	if !viewer.SuperAdmin() {
		if viewer.ID != id {
			return nil, errors.Forbidden("You can only update your own account", nil)
		}
		// Protected fields on admin records need the superAdmin role, not
		// just privilege.
		if violations := protectedFieldViolations(payload); len(violations) > 0 {
			return nil, errors.PermissionDenied(violations...)
		}
	}

	// The target must be visible to the viewer before any write.
	if _, err := uc.adminRepo.GetByIDOrEmail(ctx, id, "", viewer); err != nil {
		return nil, err
	}

	if err := rehashPassword(payload, uc.bcryptCost); err != nil {
		return nil, err
	}

	admin, err := uc.adminRepo.Update(ctx, id, flattenUpdate(payload))
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

func (uc *AdminUseCase) DeleteAdmin(ctx context.Context, id string, viewer entity.Viewer) (*entity.Admin, error) {
	if !viewer.SuperAdmin() {
		return nil, errors.Forbidden("Super admin access required", nil)
	}
	if _, err := uc.adminRepo.GetByIDOrEmail(ctx, id, "", viewer); err != nil {
		return nil, err
	}
	return uc.adminRepo.SoftDelete(ctx, id)
}
