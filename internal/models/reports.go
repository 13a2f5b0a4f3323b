package models

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceEntry is one account row of a trial balance with its balance
// projected into the debit or credit column.
type TrialBalanceEntry struct {
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	AccountType   AccountType     `json:"account_type"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalance lists every account's balance split into debit/credit columns;
// the two totals match for any ledger that only ever accepted balanced
// transactions.
type TrialBalance struct {
	Entries      []TrialBalanceEntry `json:"entries"`
	TotalDebits  decimal.Decimal     `json:"total_debits"`
	TotalCredits decimal.Decimal     `json:"total_credits"`
	IsBalanced   bool                `json:"is_balanced"`
}

// ReportAccount is one account line of a balance sheet or income statement
// section, valued at its normal-sign balance.
type ReportAccount struct {
	AccountID   string          `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Balance     decimal.Decimal `json:"balance"`
}

// ReportSection groups accounts of one type with their subtotal.
type ReportSection struct {
	Accounts []ReportAccount `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet partitions balance-sheet accounts by type and checks the
// accounting equation against net income for the same cut-off.
type BalanceSheet struct {
	Assets                    ReportSection   `json:"assets"`
	Liabilities               ReportSection   `json:"liabilities"`
	Equity                    ReportSection   `json:"equity"`
	TotalAssets               decimal.Decimal `json:"total_assets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	NetIncome                 decimal.Decimal `json:"net_income"`
	IsBalanced                bool            `json:"is_balanced"`
}

// IncomeStatement reports revenue minus expenses, optionally restricted to
// transactions within a date range.
type IncomeStatement struct {
	Revenue   ReportSection   `json:"revenue"`
	Expenses  ReportSection   `json:"expenses"`
	NetIncome decimal.Decimal `json:"net_income"`
	StartDate *Date           `json:"start_date,omitempty"`
	EndDate   *Date           `json:"end_date,omitempty"`
}

// Summary flattens the trial balance, balance sheet and income statement into
// per-type totals plus the accounting equation check.
type Summary struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetIncome        decimal.Decimal `json:"net_income"`
	IsBalanced       bool            `json:"is_balanced"`
}

// StatementLine is one ledger entry on an account statement together with the
// running balance after applying it.
type StatementLine struct {
	TransactionID          string          `json:"transaction_id"`
	TransactionDescription string          `json:"transaction_description"`
	TransactionDate        Date            `json:"transaction_date"`
	DebitAmount            decimal.Decimal `json:"debit_amount"`
	CreditAmount           decimal.Decimal `json:"credit_amount"`
	Description            string          `json:"description,omitempty"`
	RunningBalance         decimal.Decimal `json:"running_balance"`
}

// AccountStatement is the posting history of a single account over an
// optional date range with opening and closing balances.
type AccountStatement struct {
	AccountID      string          `json:"account_id"`
	AccountCode    string          `json:"account_code"`
	AccountName    string          `json:"account_name"`
	AccountType    AccountType     `json:"account_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Entries        []StatementLine `json:"entries"`
	TotalDebits    decimal.Decimal `json:"total_debits"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
}
