package mapping

import (
	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		BillingEmail: d.BillingEmail,
		PlanID:       d.PlanID,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		BillingEmail: m.BillingEmail,
		PlanID:       m.PlanID,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCompanyMember converts a domain CompanyMember to a model CompanyMember
func ToModelCompanyMember(d domain.CompanyMember) models.CompanyMember {
	return models.CompanyMember{
		UserID:    d.UserID,
		CompanyID: d.CompanyID,
		Role:      models.CompanyRole(d.Role),
		JoinedAt:  d.JoinedAt,
	}
}

// ToDomainCompanyMember converts a model CompanyMember to a domain CompanyMember
func ToDomainCompanyMember(m models.CompanyMember) domain.CompanyMember {
	return domain.CompanyMember{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      domain.CompanyRole(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
