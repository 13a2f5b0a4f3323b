package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account in the chart of accounts. The type is
// fixed for the lifetime of the account and decides its normal balance side.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists the recognized types in report ordering: balance sheet
// sections first, then income statement sections.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// IsValid reports whether t is one of the five recognized account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// IsDebitNormal reports whether the type's balance increases on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// SortOrder returns the conventional report position of the type.
func (t AccountType) SortOrder() int {
	for i, at := range AccountTypes {
		if t == at {
			return i
		}
	}
	return len(AccountTypes)
}

// Account is one entry in the chart of accounts. Balance is stored in
// normal-balance sign: a positive value is a balance on the account's normal
// side (debit for asset/expense, credit for the rest). Only transaction
// postings move it.
type Account struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	ParentID    *string         `json:"parent_id,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateAccountRequest registers a new account.
type CreateAccountRequest struct {
	Code        string      `json:"code" validate:"required,max=20"`
	Name        string      `json:"name" validate:"required,max=100"`
	AccountType AccountType `json:"account_type" validate:"required"`
	ParentID    *string     `json:"parent_id,omitempty"`
}

// UpdateAccountRequest changes an account's name or parent. Code, type and
// balance are immutable; an omitted field is left unchanged.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ParentID *string `json:"parent_id,omitempty"`
}
