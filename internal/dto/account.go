package dto

import (
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new credit account.
type CreateAccountRequest struct {
	OwnerType domain.OwnerType `json:"ownerType" binding:"required,oneof=USER COMPANY"`
	OwnerID   string           `json:"ownerID" binding:"required"`
	Name      string           `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID         string           `json:"accountID"`
	OwnerType         domain.OwnerType `json:"ownerType"`
	OwnerID           string           `json:"ownerID"`
	Name              string           `json:"name"`
	Balance           decimal.Decimal  `json:"balance"`
	LifetimePurchased decimal.Decimal  `json:"lifetimePurchased"`
	LifetimeUsed      decimal.Decimal  `json:"lifetimeUsed"`
	IsActive          bool             `json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	LastUpdatedAt     time.Time        `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         acc.AccountID,
		OwnerType:         acc.OwnerType,
		OwnerID:           acc.OwnerID,
		Name:              acc.Name,
		Balance:           acc.Balance,
		LifetimePurchased: acc.LifetimePurchased,
		LifetimeUsed:      acc.LifetimeUsed,
		IsActive:          acc.IsActive,
		CreatedAt:         acc.CreatedAt,
		LastUpdatedAt:     acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
