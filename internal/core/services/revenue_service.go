package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// revenueService implements the RevenueSvcFacade. The delivery fee split
// is always computed here from the account's configured fee percent; the
// stored fee and net amounts are never client input.
type revenueService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepositoryFacade
	settingsSvc portssvc.SettingsSvcFacade
}

// NewRevenueService creates a new instance of revenueService.
func NewRevenueService(revenueRepo portsrepo.RevenueRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade) portssvc.RevenueSvcFacade {
	return &revenueService{
		revenueRepo: revenueRepo,
		settingsSvc: settingsSvc,
	}
}

func (s *revenueService) CreateRevenue(ctx context.Context, accountID string, req dto.CreateRevenueRequest) (*domain.Revenue, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
	}

	feePercent, err := s.feePercentFor(ctx, accountID, req.Channel)
	if err != nil {
		return nil, err
	}
	feeAmount, netAmount := accounting.DeliveryFee(req.Amount, feePercent)

	now := time.Now()
	revenue := domain.Revenue{
		RevenueID:         uuid.NewString(),
		AccountID:         accountID,
		Date:              date,
		Amount:            req.Amount,
		Channel:           req.Channel,
		FeePercentApplied: feePercent,
		FeeAmount:         feeAmount,
		NetAmount:         netAmount,
		Note:              req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.revenueRepo.SaveRevenue(ctx, revenue); err != nil {
		return nil, fmt.Errorf("failed to create revenue: %w", err)
	}

	s.LogInfo(ctx, "Revenue recorded", "revenue_id", revenue.RevenueID, "channel", string(revenue.Channel))
	return &revenue, nil
}

func (s *revenueService) UpdateRevenue(ctx context.Context, accountID, revenueID string, req dto.UpdateRevenueRequest) (*domain.Revenue, error) {
	revenue, err := s.revenueRepo.FindRevenueByID(ctx, accountID, revenueID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
		}
		revenue.Date = date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		revenue.Amount = *req.Amount
	}
	if req.Channel != nil {
		revenue.Channel = *req.Channel
	}
	if req.Note != nil {
		revenue.Note = *req.Note
	}

	// The fee split is recomputed whenever amount or channel may have
	// changed, so the stored invariants always hold.
	feePercent, err := s.feePercentFor(ctx, accountID, revenue.Channel)
	if err != nil {
		return nil, err
	}
	revenue.FeePercentApplied = feePercent
	revenue.FeeAmount, revenue.NetAmount = accounting.DeliveryFee(revenue.Amount, feePercent)

	revenue.LastUpdatedAt = time.Now()
	revenue.LastUpdatedBy = accountID

	if err := s.revenueRepo.UpdateRevenue(ctx, *revenue); err != nil {
		return nil, fmt.Errorf("failed to update revenue: %w", err)
	}
	return revenue, nil
}

func (s *revenueService) ListRevenues(ctx context.Context, accountID string, from, to time.Time) ([]domain.Revenue, error) {
	revenues, err := s.revenueRepo.FindRevenuesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	return revenues, nil
}

func (s *revenueService) DeleteRevenue(ctx context.Context, accountID, revenueID string) error {
	if err := s.revenueRepo.DeleteRevenue(ctx, accountID, revenueID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Revenue deleted", "revenue_id", revenueID)
	return nil
}

// feePercentFor returns the fee percent applicable to a channel: the
// account's delivery fee for DELIVERY, zero for LOCAL.
func (s *revenueService) feePercentFor(ctx context.Context, accountID string, channel domain.RevenueChannel) (decimal.Decimal, error) {
	if channel != domain.ChannelDelivery {
		return decimal.Zero, nil
	}
	settings, err := s.settingsSvc.GetSettings(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve delivery fee percent: %w", err)
	}
	return settings.DeliveryFeePercent, nil
}
