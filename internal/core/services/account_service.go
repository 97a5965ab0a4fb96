package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade for tenant accounts.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

func (s *accountService) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}
	return account, nil
}

// CreateAccount registers a new account and seeds it with default settings
// so the ledger endpoints work before any configuration happens.
func (s *accountService) CreateAccount(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	existing, err := s.accountRepo.FindAccountByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s already taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	accountID := uuid.NewString()
	account := domain.Account{
		AccountID:    accountID,
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.seedDefaultSettings(ctx, accountID, now); err != nil {
		// The account exists; settings fall back to defaults on read.
		s.LogError(ctx, err, "Failed to seed default settings", "account_id", accountID)
	}

	s.LogInfo(ctx, "Account registered", "account_id", accountID)
	return &account, nil
}

// FindOrCreateByGoogleLogin resolves a verified Google login to an
// account. The Google subject keys the username so repeat logins find the
// same account.
func (s *accountService) FindOrCreateByGoogleLogin(ctx context.Context, info domain.GoogleUserInfo) (*domain.Account, error) {
	if info.ID == "" || !info.VerifiedEmail {
		return nil, fmt.Errorf("google login requires a verified email: %w", apperrors.ErrUnauthorized)
	}

	username := "google:" + info.ID
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google account: %w", err)
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = info.Email
	}

	now := time.Now()
	accountID := uuid.NewString()
	newAccount := domain.Account{
		AccountID: accountID,
		Name:      name,
		Username:  username,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, newAccount); err != nil {
		return nil, fmt.Errorf("failed to create account from google login: %w", err)
	}

	if err := s.seedDefaultSettings(ctx, accountID, now); err != nil {
		s.LogError(ctx, err, "Failed to seed default settings", "account_id", accountID)
	}

	s.LogInfo(ctx, "Account created via google login", "account_id", accountID)
	return &newAccount, nil
}

func (s *accountService) StoreRefreshToken(ctx context.Context, accountID, refreshTokenHash string, expiryTime time.Time) error {
	if err := s.accountRepo.UpdateRefreshToken(ctx, accountID, &refreshTokenHash, &expiryTime); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *accountService) ClearRefreshToken(ctx context.Context, accountID string) error {
	if err := s.accountRepo.UpdateRefreshToken(ctx, accountID, nil, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *accountService) seedDefaultSettings(ctx context.Context, accountID string, now time.Time) error {
	settings := domain.Settings{
		AccountID:          accountID,
		StartingBalance:    decimal.Zero,
		DefaultVatPercent:  decimal.NewFromInt(10),
		DeliveryFeePercent: decimal.NewFromInt(20),
		Currency:           domain.DefaultCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}
	return s.settingsRepo.SaveSettings(ctx, settings)
}
