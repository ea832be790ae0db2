package mapping

import (
	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/models"
)

// ToModelPlan converts a domain Plan to a model Plan
func ToModelPlan(d domain.Plan) models.Plan {
	return models.Plan{
		PlanID:         d.PlanID,
		Name:           d.Name,
		MonthlyCredits: d.MonthlyCredits,
		PricePerPage:   d.PricePerPage,
		PriceMonthly:   d.PriceMonthly,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPlan converts a model Plan to a domain Plan
func ToDomainPlan(m models.Plan) domain.Plan {
	return domain.Plan{
		PlanID:         m.PlanID,
		Name:           m.Name,
		MonthlyCredits: m.MonthlyCredits,
		PricePerPage:   m.PricePerPage,
		PriceMonthly:   m.PriceMonthly,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
