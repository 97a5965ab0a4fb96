package dto

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest replaces the account's bookkeeping configuration.
type UpdateSettingsRequest struct {
	StartingBalance    decimal.Decimal `json:"startingBalance"`
	DefaultVatPercent  decimal.Decimal `json:"defaultVatPercent"`
	DeliveryFeePercent decimal.Decimal `json:"deliveryFeePercent"`
	Currency           string          `json:"currency" binding:"omitempty,len=3"`
}

// SettingsResponse defines the data returned for account settings.
type SettingsResponse struct {
	StartingBalance    decimal.Decimal `json:"startingBalance"`
	DefaultVatPercent  decimal.Decimal `json:"defaultVatPercent"`
	DeliveryFeePercent decimal.Decimal `json:"deliveryFeePercent"`
	Currency           string          `json:"currency"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		StartingBalance:    s.StartingBalance,
		DefaultVatPercent:  s.DefaultVatPercent,
		DeliveryFeePercent: s.DeliveryFeePercent,
		Currency:           s.Currency,
	}
}
