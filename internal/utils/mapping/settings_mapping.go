package mapping

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/models"
)

// ToModelSettings converts a domain Settings to a model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		AccountID:          d.AccountID,
		StartingBalance:    d.StartingBalance,
		DefaultVatPercent:  d.DefaultVatPercent,
		DeliveryFeePercent: d.DeliveryFeePercent,
		Currency:           d.Currency,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts a model Settings to a domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		AccountID:          m.AccountID,
		StartingBalance:    m.StartingBalance,
		DefaultVatPercent:  m.DefaultVatPercent,
		DeliveryFeePercent: m.DeliveryFeePercent,
		Currency:           m.Currency,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
