package mapping

import (
	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:         d.AccountID,
		OwnerType:         models.OwnerType(d.OwnerType),
		OwnerID:           d.OwnerID,
		Name:              d.Name,
		Balance:           d.Balance,
		LifetimePurchased: d.LifetimePurchased,
		LifetimeUsed:      d.LifetimeUsed,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:         m.AccountID,
		OwnerType:         domain.OwnerType(m.OwnerType),
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		Balance:           m.Balance,
		LifetimePurchased: m.LifetimePurchased,
		LifetimeUsed:      m.LifetimeUsed,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
