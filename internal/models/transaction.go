package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// JournalEntry is one line of a posted transaction: a debit or a credit
// against a single account. Exactly one of the two amounts is positive,
// the other is zero. Account code and name are snapshots taken at posting.
type JournalEntry struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	DebitAmount   decimal.Decimal `json:"debit_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsDebit reports whether the entry posts to the debit side.
func (e JournalEntry) IsDebit() bool {
	return e.DebitAmount.IsPositive()
}

// Amount returns the magnitude of the entry regardless of side.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// Transaction is an immutable, balanced set of journal entries posted to the
// ledger as a single unit.
type Transaction struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference,omitempty"`
	TransactionDate Date            `json:"transaction_date"`
	JournalEntries  []JournalEntry  `json:"journal_entries"`
	TotalDebits     decimal.Decimal `json:"total_debits"`
	TotalCredits    decimal.Decimal `json:"total_credits"`
	IsBalanced      bool            `json:"is_balanced"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateJournalEntryRequest is one requested line of a transaction. Exactly
// one of DebitAmount/CreditAmount must be present and strictly positive.
type CreateJournalEntryRequest struct {
	AccountID    string           `json:"account_id" validate:"required"`
	DebitAmount  *decimal.Decimal `json:"debit_amount,omitempty"`
	CreditAmount *decimal.Decimal `json:"credit_amount,omitempty"`
	Description  string           `json:"description,omitempty" validate:"max=200"`
}

// CreateTransactionRequest posts a new transaction to the ledger.
type CreateTransactionRequest struct {
	Description     string                      `json:"description" validate:"required,max=200"`
	Reference       string                      `json:"reference,omitempty" validate:"max=50"`
	TransactionDate Date                        `json:"transaction_date" validate:"required"`
	JournalEntries  []CreateJournalEntryRequest `json:"journal_entries" validate:"required,min=2,dive"`
}

// TransactionFilter narrows transaction listings. All set fields must match.
type TransactionFilter struct {
	StartDate           *Date
	EndDate             *Date
	DescriptionContains string
	Limit               int
}

// ValidationResult is the outcome of a transaction dry run.
type ValidationResult struct {
	Valid       bool             `json:"valid"`
	Errors      []string         `json:"errors"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
}
