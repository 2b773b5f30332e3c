package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
)

type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	bcryptCost int
}

func NewVendorUseCase(vendorRepo repository.VendorRepository, bcryptCost int) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, bcryptCost: bcryptCost}
}

type RegisterVendorInput struct {
	Email       string
	Password    string
	PhoneNumber string
	Profile     *entity.VendorProfile
}

func (uc *VendorUseCase) Register(ctx context.Context, input RegisterVendorInput) (*entity.Vendor, error) {
	if input.Profile == nil || input.Profile.BusinessName == "" {
		return nil, errors.Validation("businessName is required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	vendor := &entity.Vendor{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Role:         entity.RoleVendor,
		IsActive:     true,
		Profile:      input.Profile,
	}
	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	vendor.PasswordHash = ""
	return vendor, nil
}

func (uc *VendorUseCase) GetVendor(ctx context.Context, id, email string, viewer entity.Viewer) (*entity.Vendor, error) {
	if id == "" && email == "" {
		return nil, errors.Validation("id or email is required", nil)
	}
	return uc.vendorRepo.GetByIDOrEmail(ctx, id, email, viewer)
}

func (uc *VendorUseCase) ListVendors(ctx context.Context, params map[string]string, page repository.Page, viewer entity.Viewer) ([]*entity.Vendor, int64, error) {
	if !viewer.Privileged() {
		return nil, 0, errors.Forbidden("Admin access required", nil)
	}

	query, err := ParseAccountQuery(params)
	if err != nil {
		return nil, 0, err
	}
	return uc.vendorRepo.List(ctx, query, ParseSort(params), page, viewer)
}

func (uc *VendorUseCase) UpdateVendor(ctx context.Context, id string, payload map[string]interface{}, viewer entity.Viewer) (*entity.Vendor, error) {
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

	vendor, err := uc.vendorRepo.Update(ctx, id, flattenUpdate(payload))
	if err != nil {
		return nil, err
	}
	vendor.PasswordHash = ""
	return vendor, nil
}

func (uc *VendorUseCase) DeleteVendor(ctx context.Context, id string, viewer entity.Viewer) (*entity.Vendor, error) {
	if !viewer.Privileged() && viewer.ID != id {
		return nil, errors.Forbidden("You can only delete your own account", nil)
	}
	return uc.vendorRepo.SoftDelete(ctx, id)
}
