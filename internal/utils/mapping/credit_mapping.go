package mapping

import (
	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/askelio/askelio-backend/internal/models"
)

// ToModelCreditTransaction converts a domain ledger entry to its model form
func ToModelCreditTransaction(d domain.CreditTransaction) models.CreditTransaction {
	return models.CreditTransaction{
		TransactionID:    d.TransactionID,
		AccountID:        d.AccountID,
		Amount:           d.Amount,
		Kind:             models.TransactionKind(d.Kind),
		Description:      d.Description,
		Category:         d.Category,
		DocumentID:       d.DocumentID,
		SessionID:        d.SessionID,
		PaymentMethod:    d.PaymentMethod,
		PaymentReference: d.PaymentReference,
		Provider:         d.Provider,
		Model:            d.Model,
		PagesProcessed:   d.PagesProcessed,
		TokensUsed:       d.TokensUsed,
		CostUSD:          d.CostUSD,
		BalanceBefore:    d.BalanceBefore,
		BalanceAfter:     d.BalanceAfter,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditTransaction converts a model ledger entry to its domain form
func ToDomainCreditTransaction(m models.CreditTransaction) domain.CreditTransaction {
	return domain.CreditTransaction{
		TransactionID:    m.TransactionID,
		AccountID:        m.AccountID,
		Amount:           m.Amount,
		Kind:             domain.TransactionKind(m.Kind),
		Description:      m.Description,
		Category:         m.Category,
		DocumentID:       m.DocumentID,
		SessionID:        m.SessionID,
		PaymentMethod:    m.PaymentMethod,
		PaymentReference: m.PaymentReference,
		Provider:         m.Provider,
		Model:            m.Model,
		PagesProcessed:   m.PagesProcessed,
		TokensUsed:       m.TokensUsed,
		CostUSD:          m.CostUSD,
		BalanceBefore:    m.BalanceBefore,
		BalanceAfter:     m.BalanceAfter,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditTransactionSlice converts a slice of model ledger entries
func ToDomainCreditTransactionSlice(ms []models.CreditTransaction) []domain.CreditTransaction {
	ds := make([]domain.CreditTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditTransaction(m)
	}
	return ds
}
