package mapping

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/models"
)

// ToModelRevenue converts a domain Revenue to a model Revenue
func ToModelRevenue(d domain.Revenue) models.Revenue {
	return models.Revenue{
		RevenueID:         d.RevenueID,
		AccountID:         d.AccountID,
		Date:              d.Date,
		Amount:            d.Amount,
		Channel:           string(d.Channel),
		FeePercentApplied: d.FeePercentApplied,
		FeeAmount:         d.FeeAmount,
		NetAmount:         d.NetAmount,
		Note:              d.Note,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevenue converts a model Revenue to a domain Revenue
func ToDomainRevenue(m models.Revenue) domain.Revenue {
	return domain.Revenue{
		RevenueID:         m.RevenueID,
		AccountID:         m.AccountID,
		Date:              m.Date,
		Amount:            m.Amount,
		Channel:           domain.RevenueChannel(m.Channel),
		FeePercentApplied: m.FeePercentApplied,
		FeeAmount:         m.FeeAmount,
		NetAmount:         m.NetAmount,
		Note:              m.Note,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRevenueSlice converts a slice of model Revenues to a slice of domain Revenues
func ToDomainRevenueSlice(ms []models.Revenue) []domain.Revenue {
	ds := make([]domain.Revenue, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevenue(m)
	}
	return ds
}
