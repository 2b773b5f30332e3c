package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/delwerhossain/e-com/internal/domain/entity"
	"github.com/delwerhossain/e-com/internal/domain/repository"
	"github.com/delwerhossain/e-com/pkg/errors"
	"github.com/delwerhossain/e-com/pkg/logger"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	adminRepo  repository.AdminRepository
	jwtSecret  string
	jwtExpiry  int64
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	vendorRepo repository.VendorRepository,
	adminRepo repository.AdminRepository,
	jwtSecret string,
	jwtExpiry int64,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		adminRepo:  adminRepo,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
	}
}

type LoginInput struct {
	Email       string
	Password    string
	AccountType string // user, vendor or admin
}

type LoginResult struct {
	Token   string      `json:"token"`
	Account interface{} `json:"account"`
}

// Login verifies credentials against the collection named by AccountType.
// Deleted and deactivated accounts read as not found, the same answer an
// unknown email gets.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput, ip string) (*LoginResult, error) {
	var (
		id, hash, role string
		account        interface{}
	)

	switch input.AccountType {
	case "user", "":
		user, err := uc.userRepo.GetCredentials(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if user.IsDelete || !user.IsActive {
			return nil, errors.NotFound("User", nil)
		}
		id, hash, role = user.ID.Hex(), user.PasswordHash, user.Role
		user.PasswordHash = ""
		account = user
	case "vendor":
		vendor, err := uc.vendorRepo.GetCredentials(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if vendor.IsDelete || !vendor.IsActive {
			return nil, errors.NotFound("Vendor", nil)
		}
		id, hash, role = vendor.ID.Hex(), vendor.PasswordHash, vendor.Role
		vendor.PasswordHash = ""
		account = vendor
	case "admin":
		admin, err := uc.adminRepo.GetCredentials(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if admin.IsDelete || !admin.IsActive {
			return nil, errors.NotFound("Admin", nil)
		}
		id, hash, role = admin.ID.Hex(), admin.PasswordHash, admin.Role
		admin.PasswordHash = ""
		account = admin
	default:
		return nil, errors.Validation("accountType must be user, vendor or admin", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.issueToken(id, role)
	if err != nil {
		return nil, err
	}

	uc.recordLogin(ctx, input.AccountType, id, ip)

	return &LoginResult{Token: token, Account: account}, nil
}

func (uc *AuthUseCase) issueToken(id, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  id,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(uc.jwtExpiry) * time.Second).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return token, nil
}

// recordLogin is best effort; a failed bookkeeping write must not fail the
// login itself.
func (uc *AuthUseCase) recordLogin(ctx context.Context, accountType, id, ip string) {
	login := entity.LastLogin{Timestamp: time.Now(), IP: ip}

	var err error
	switch accountType {
	case "vendor":
		err = uc.vendorRepo.SetLastLogin(ctx, id, login)
	case "admin":
		err = uc.adminRepo.SetLastLogin(ctx, id, login)
	default:
		err = uc.userRepo.SetLastLogin(ctx, id, login)
	}
	if err != nil {
		logger.Error("recording last login for %s failed: %v", id, err)
	}
}

// ParseToken validates a bearer token and returns the viewer it represents.
func (uc *AuthUseCase) ParseToken(tokenString string) (entity.Viewer, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return entity.Viewer{}, errors.Unauthorized("Invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Viewer{}, errors.Unauthorized("Invalid token claims", nil)
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return entity.Viewer{}, errors.Unauthorized("Invalid token claims", nil)
	}

	return entity.Viewer{ID: sub, Role: role}, nil
}
