package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	KindPurchase   TransactionKind = "PURCHASE"
	KindUsage      TransactionKind = "USAGE"
	KindRefund     TransactionKind = "REFUND"
	KindBonus      TransactionKind = "BONUS"
	KindAdjustment TransactionKind = "ADJUSTMENT"
)

// ValidKind reports whether k is one of the enumerated transaction kinds.
func ValidKind(k TransactionKind) bool {
	switch k {
	case KindPurchase, KindUsage, KindRefund, KindBonus, KindAdjustment:
		return true
	}
	return false
}

// CreditTransaction is one immutable entry in an account's credit ledger.
// Amount is signed: positive moves credits in, negative is consumption.
// BalanceBefore/BalanceAfter snapshot the account balance around the append.
// Entries are created once and never mutated or deleted.
type CreditTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id
	Amount        decimal.Decimal `json:"amount"`
	Kind          TransactionKind `json:"kind"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`

	// Links to whatever caused the entry. All optional.
	DocumentID       *string `json:"documentID,omitempty"`  // processed document
	SessionID        *string `json:"sessionID,omitempty"`   // processing session
	PaymentMethod    *string `json:"paymentMethod,omitempty"`
	PaymentReference *string `json:"paymentReference,omitempty"`

	// Cost accounting for usage entries.
	Provider       *string          `json:"provider,omitempty"` // e.g. tesseract, cloud AI
	Model          *string          `json:"model,omitempty"`
	PagesProcessed *int             `json:"pagesProcessed,omitempty"`
	TokensUsed     *int64           `json:"tokensUsed,omitempty"`
	CostUSD        *decimal.Decimal `json:"costUSD,omitempty"`

	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	AuditFields
}

// Validate checks the structural invariants of a ledger entry: a known kind,
// a non-zero amount whose sign matches the kind, and consistent balance
// snapshots when they are populated.
func (t CreditTransaction) Validate() error {
	if t.AccountID == "" {
		return errors.New("account ID is required")
	}
	if !ValidKind(t.Kind) {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.Amount.IsZero() {
		return errors.New("amount must be non-zero")
	}
	switch t.Kind {
	case KindPurchase, KindBonus:
		if t.Amount.IsNegative() {
			return fmt.Errorf("%s amount must be positive", t.Kind)
		}
	case KindUsage:
		if t.Amount.IsPositive() {
			return errors.New("USAGE amount must be negative")
		}
	}
	// Snapshots are assigned by the append path; when both are zero the entry
	// has not been persisted yet and the check is skipped.
	if !t.BalanceBefore.IsZero() || !t.BalanceAfter.IsZero() {
		if !t.BalanceAfter.Equal(t.BalanceBefore.Add(t.Amount)) {
			return fmt.Errorf("balance snapshots inconsistent: %s + %s != %s",
				t.BalanceBefore, t.Amount, t.BalanceAfter)
		}
	}
	return nil
}

// IsUsage reports whether the entry records credit consumption.
func (t CreditTransaction) IsUsage() bool {
	return t.Kind == KindUsage
}
