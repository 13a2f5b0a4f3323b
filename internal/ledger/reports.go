package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clearbooks/backend/internal/models"
)

// TrialBalance lists every account with its balance split into debit/credit
// columns, ordered by account type then code. The totals match whenever only
// balanced transactions have ever been posted; the IsBalanced flag is a
// cross-check, not a separate source of truth.
func (l *Ledger) TrialBalance() models.TrialBalance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tb := models.TrialBalance{Entries: make([]models.TrialBalanceEntry, 0, len(l.accountOrder))}
	for _, id := range l.accountOrder {
		account := l.accounts[id]
		debit, credit := SplitBalance(account.AccountType, account.Balance)
		tb.Entries = append(tb.Entries, models.TrialBalanceEntry{
			AccountID:     account.ID,
			AccountCode:   account.Code,
			AccountName:   account.Name,
			AccountType:   account.AccountType,
			DebitBalance:  debit,
			CreditBalance: credit,
		})
		tb.TotalDebits = tb.TotalDebits.Add(debit)
		tb.TotalCredits = tb.TotalCredits.Add(credit)
	}

	sort.SliceStable(tb.Entries, func(i, j int) bool {
		a, b := tb.Entries[i], tb.Entries[j]
		if a.AccountType != b.AccountType {
			return a.AccountType.SortOrder() < b.AccountType.SortOrder()
		}
		return a.AccountCode < b.AccountCode
	})

	tb.IsBalanced = tb.TotalDebits.Equal(tb.TotalCredits)
	return tb
}

// BalanceSheet groups asset, liability and equity accounts with their totals.
// The equation check folds in net income for the same cut-off, since revenue
// and expenses have not been closed to equity.
func (l *Ledger) BalanceSheet() models.BalanceSheet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sections := map[models.AccountType]*models.ReportSection{
		models.AccountTypeAsset:     {Accounts: []models.ReportAccount{}},
		models.AccountTypeLiability: {Accounts: []models.ReportAccount{}},
		models.AccountTypeEquity:    {Accounts: []models.ReportAccount{}},
	}
	var netIncome decimal.Decimal
	for _, id := range l.accountOrder {
		account := l.accounts[id]
		switch account.AccountType {
		case models.AccountTypeRevenue:
			netIncome = netIncome.Add(account.Balance)
			continue
		case models.AccountTypeExpense:
			netIncome = netIncome.Sub(account.Balance)
			continue
		}
		section := sections[account.AccountType]
		section.Accounts = append(section.Accounts, models.ReportAccount{
			AccountID:   account.ID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Balance:     account.Balance,
		})
		section.Total = section.Total.Add(account.Balance)
	}

	for _, section := range sections {
		sortSection(section)
	}

	bs := models.BalanceSheet{
		Assets:      *sections[models.AccountTypeAsset],
		Liabilities: *sections[models.AccountTypeLiability],
		Equity:      *sections[models.AccountTypeEquity],
		NetIncome:   netIncome,
	}
	bs.TotalAssets = bs.Assets.Total
	bs.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	bs.IsBalanced = bs.TotalAssets.Equal(bs.TotalLiabilitiesAndEquity.Add(bs.NetIncome))
	return bs
}

// IncomeStatement reports revenue and expense accounts with net income. With
// no range it values accounts at their current balance; with a range it
// values them at the balance delta attributable to transactions in range.
func (l *Ledger) IncomeStatement(startDate, endDate *models.Date) models.IncomeStatement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ranged := startDate != nil || endDate != nil

	amounts := make(map[string]decimal.Decimal)
	if ranged {
		for _, tx := range l.transactions {
			if startDate != nil && tx.TransactionDate.Before(startDate.Time) {
				continue
			}
			if endDate != nil && tx.TransactionDate.After(endDate.Time) {
				continue
			}
			for _, entry := range tx.JournalEntries {
				account := l.accounts[entry.AccountID]
				if account == nil {
					continue
				}
				amounts[account.ID] = amounts[account.ID].Add(EntryDelta(account.AccountType, entry))
			}
		}
	}

	revenue := models.ReportSection{Accounts: []models.ReportAccount{}}
	expenses := models.ReportSection{Accounts: []models.ReportAccount{}}
	for _, id := range l.accountOrder {
		account := l.accounts[id]
		if account.AccountType != models.AccountTypeRevenue && account.AccountType != models.AccountTypeExpense {
			continue
		}
		amount := account.Balance
		if ranged {
			amount = amounts[account.ID]
		}
		line := models.ReportAccount{
			AccountID:   account.ID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Balance:     amount,
		}
		if account.AccountType == models.AccountTypeRevenue {
			revenue.Accounts = append(revenue.Accounts, line)
			revenue.Total = revenue.Total.Add(amount)
		} else {
			expenses.Accounts = append(expenses.Accounts, line)
			expenses.Total = expenses.Total.Add(amount)
		}
	}
	sortSection(&revenue)
	sortSection(&expenses)

	return models.IncomeStatement{
		Revenue:   revenue,
		Expenses:  expenses,
		NetIncome: revenue.Total.Sub(expenses.Total),
		StartDate: startDate,
		EndDate:   endDate,
	}
}

// Summary flattens the reports into per-type totals plus the accounting
// equation check: assets = liabilities + equity + net income.
func (l *Ledger) Summary() models.Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var s models.Summary
	for _, id := range l.accountOrder {
		account := l.accounts[id]
		switch account.AccountType {
		case models.AccountTypeAsset:
			s.TotalAssets = s.TotalAssets.Add(account.Balance)
		case models.AccountTypeLiability:
			s.TotalLiabilities = s.TotalLiabilities.Add(account.Balance)
		case models.AccountTypeEquity:
			s.TotalEquity = s.TotalEquity.Add(account.Balance)
		case models.AccountTypeRevenue:
			s.TotalRevenue = s.TotalRevenue.Add(account.Balance)
		case models.AccountTypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(account.Balance)
		}
	}
	s.NetIncome = s.TotalRevenue.Sub(s.TotalExpenses)
	s.IsBalanced = s.TotalAssets.Equal(s.TotalLiabilities.Add(s.TotalEquity).Add(s.NetIncome))
	return s
}

// AccountStatement replays the account's posting history over an optional
// date range with opening and closing balances and a running balance per
// line. Balances start at zero, so the opening balance is the sum of deltas
// from entries dated before the range.
func (l *Ledger) AccountStatement(accountID string, startDate, endDate *models.Date) (models.AccountStatement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[accountID]
	if !ok {
		return models.AccountStatement{}, ErrAccountNotFound
	}

	statement := models.AccountStatement{
		AccountID:   account.ID,
		AccountCode: account.Code,
		AccountName: account.Name,
		AccountType: account.AccountType,
		Entries:     []models.StatementLine{},
	}

	type dated struct {
		tx    *models.Transaction
		entry models.JournalEntry
	}
	var lines []dated
	for _, tx := range l.transactions {
		for _, entry := range tx.JournalEntries {
			if entry.AccountID != accountID {
				continue
			}
			if startDate != nil && tx.TransactionDate.Before(startDate.Time) {
				statement.OpeningBalance = statement.OpeningBalance.Add(EntryDelta(account.AccountType, entry))
				continue
			}
			if endDate != nil && tx.TransactionDate.After(endDate.Time) {
				continue
			}
			lines = append(lines, dated{tx: tx, entry: entry})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].tx.TransactionDate.Before(lines[j].tx.TransactionDate.Time)
	})

	running := statement.OpeningBalance
	for _, line := range lines {
		running = running.Add(EntryDelta(account.AccountType, line.entry))
		statement.Entries = append(statement.Entries, models.StatementLine{
			TransactionID:          line.tx.ID,
			TransactionDescription: line.tx.Description,
			TransactionDate:        line.tx.TransactionDate,
			DebitAmount:            line.entry.DebitAmount,
			CreditAmount:           line.entry.CreditAmount,
			Description:            line.entry.Description,
			RunningBalance:         running,
		})
		statement.TotalDebits = statement.TotalDebits.Add(line.entry.DebitAmount)
		statement.TotalCredits = statement.TotalCredits.Add(line.entry.CreditAmount)
	}
	statement.ClosingBalance = running

	return statement, nil
}

func sortSection(section *models.ReportSection) {
	sort.SliceStable(section.Accounts, func(i, j int) bool {
		return section.Accounts[i].AccountCode < section.Accounts[j].AccountCode
	})
}
