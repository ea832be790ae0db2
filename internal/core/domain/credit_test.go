package domain_test

import (
	"testing"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidKind(t *testing.T) {
	assert.True(t, domain.ValidKind(domain.KindPurchase))
	assert.True(t, domain.ValidKind(domain.KindUsage))
	assert.True(t, domain.ValidKind(domain.KindRefund))
	assert.True(t, domain.ValidKind(domain.KindBonus))
	assert.True(t, domain.ValidKind(domain.KindAdjustment))
	assert.False(t, domain.ValidKind(domain.TransactionKind("GIFT")))
	assert.False(t, domain.ValidKind(domain.TransactionKind("")))
}

func TestCreditTransactionValidate(t *testing.T) {
	base := domain.CreditTransaction{
		TransactionID: "tx-1",
		AccountID:     "acc-1",
	}

	tests := []struct {
		name    string
		mutate  func(*domain.CreditTransaction)
		wantErr string
	}{
		{
			name: "valid purchase",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindPurchase
				tx.Amount = dec("500.00")
			},
		},
		{
			name: "valid usage",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindUsage
				tx.Amount = dec("-0.25")
			},
		},
		{
			name: "valid negative adjustment",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindAdjustment
				tx.Amount = dec("-3")
			},
		},
		{
			name: "valid refund with snapshots",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindRefund
				tx.Amount = dec("2.50")
				tx.BalanceBefore = dec("10")
				tx.BalanceAfter = dec("12.50")
			},
		},
		{
			name: "missing account",
			mutate: func(tx *domain.CreditTransaction) {
				tx.AccountID = ""
				tx.Kind = domain.KindPurchase
				tx.Amount = dec("1")
			},
			wantErr: "account ID is required",
		},
		{
			name: "unknown kind",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.TransactionKind("GIFT")
				tx.Amount = dec("1")
			},
			wantErr: "unknown transaction kind",
		},
		{
			name: "zero amount",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindPurchase
				tx.Amount = decimal.Zero
			},
			wantErr: "amount must be non-zero",
		},
		{
			name: "negative purchase",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindPurchase
				tx.Amount = dec("-5")
			},
			wantErr: "PURCHASE amount must be positive",
		},
		{
			name: "negative bonus",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindBonus
				tx.Amount = dec("-5")
			},
			wantErr: "BONUS amount must be positive",
		},
		{
			name: "positive usage",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindUsage
				tx.Amount = dec("5")
			},
			wantErr: "USAGE amount must be negative",
		},
		{
			name: "inconsistent snapshots",
			mutate: func(tx *domain.CreditTransaction) {
				tx.Kind = domain.KindPurchase
				tx.Amount = dec("5")
				tx.BalanceBefore = dec("10")
				tx.BalanceAfter = dec("14")
			},
			wantErr: "balance snapshots inconsistent",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := base
			tc.mutate(&tx)
			err := tx.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestIsUsage(t *testing.T) {
	usage := domain.CreditTransaction{Kind: domain.KindUsage}
	purchase := domain.CreditTransaction{Kind: domain.KindPurchase}
	assert.True(t, usage.IsUsage())
	assert.False(t, purchase.IsUsage())
}
