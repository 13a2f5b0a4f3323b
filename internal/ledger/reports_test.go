package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks/backend/internal/models"
)

// seedBooks posts a small but complete set of books:
// loan drawdown, two sales and a rent payment.
func seedBooks(t *testing.T) (*Ledger, map[string]models.Account) {
	t.Helper()
	l := New()

	accounts := make(map[string]models.Account)
	for _, spec := range []struct {
		code string
		name string
		typ  models.AccountType
	}{
		{"1000", "Cash", models.AccountTypeAsset},
		{"2000", "Bank Loan", models.AccountTypeLiability},
		{"3000", "Owner Equity", models.AccountTypeEquity},
		{"4000", "Sales", models.AccountTypeRevenue},
		{"5000", "Rent", models.AccountTypeExpense},
	} {
		account, err := l.CreateAccount(models.CreateAccountRequest{
			Code: spec.code, Name: spec.name, AccountType: spec.typ,
		})
		require.NoError(t, err)
		accounts[spec.code] = account
	}

	post := func(desc string, date models.Date, entries ...models.CreateJournalEntryRequest) {
		_, err := l.PostTransaction(models.CreateTransactionRequest{
			Description:     desc,
			TransactionDate: date,
			JournalEntries:  entries,
		})
		require.NoError(t, err)
	}

	post("Loan drawdown", models.NewDate(2024, 1, 5),
		debitEntry(accounts["1000"].ID, "1000.00"),
		creditEntry(accounts["2000"].ID, "1000.00"))
	post("January sale", models.NewDate(2024, 1, 20),
		debitEntry(accounts["1000"].ID, "600.00"),
		creditEntry(accounts["4000"].ID, "600.00"))
	post("February sale", models.NewDate(2024, 2, 20),
		debitEntry(accounts["1000"].ID, "400.00"),
		creditEntry(accounts["4000"].ID, "400.00"))
	post("February rent", models.NewDate(2024, 2, 25),
		debitEntry(accounts["5000"].ID, "300.00"),
		creditEntry(accounts["1000"].ID, "300.00"))

	return l, accounts
}

func TestTrialBalance(t *testing.T) {
	t.Run("totals match after balanced postings", func(t *testing.T) {
		l, _ := seedBooks(t)

		tb := l.TrialBalance()
		assert.True(t, tb.IsBalanced)
		assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits))
		// Cash 1700 debit + Rent 300 debit.
		assert.True(t, tb.TotalDebits.Equal(dec("2000.00")))
	})

	t.Run("rows are ordered by type then code", func(t *testing.T) {
		l, _ := seedBooks(t)

		tb := l.TrialBalance()
		require.Len(t, tb.Entries, 5)
		var codes []string
		for _, row := range tb.Entries {
			codes = append(codes, row.AccountCode)
		}
		assert.Equal(t, []string{"1000", "2000", "3000", "4000", "5000"}, codes)
	})

	t.Run("balances land in the normal column", func(t *testing.T) {
		l, _ := seedBooks(t)

		tb := l.TrialBalance()
		byCode := make(map[string]models.TrialBalanceEntry)
		for _, row := range tb.Entries {
			byCode[row.AccountCode] = row
		}

		assert.True(t, byCode["1000"].DebitBalance.Equal(dec("1700.00")))
		assert.True(t, byCode["1000"].CreditBalance.IsZero())
		assert.True(t, byCode["2000"].CreditBalance.Equal(dec("1000.00")))
		assert.True(t, byCode["4000"].CreditBalance.Equal(dec("1000.00")))
		assert.True(t, byCode["5000"].DebitBalance.Equal(dec("300.00")))
	})

	t.Run("minimal scenario", func(t *testing.T) {
		l, cash, revenue := setupLedger(t)
		_, err := l.PostTransaction(models.CreateTransactionRequest{
			Description:     "Sale",
			TransactionDate: models.NewDate(2024, 3, 1),
			JournalEntries: []models.CreateJournalEntryRequest{
				debitEntry(cash.ID, "500.00"),
				creditEntry(revenue.ID, "500.00"),
			},
		})
		require.NoError(t, err)

		tb := l.TrialBalance()
		assert.True(t, tb.IsBalanced)
		assert.True(t, tb.TotalDebits.Equal(dec("500.00")))
		assert.True(t, tb.TotalCredits.Equal(dec("500.00")))
	})
}

func TestBalanceSheet(t *testing.T) {
	t.Run("equation holds with net income folded in", func(t *testing.T) {
		l, _ := seedBooks(t)

		bs := l.BalanceSheet()
		assert.True(t, bs.TotalAssets.Equal(dec("1700.00")))
		assert.True(t, bs.TotalLiabilitiesAndEquity.Equal(dec("1000.00")))
		assert.True(t, bs.NetIncome.Equal(dec("700.00")))
		assert.True(t, bs.IsBalanced)
	})

	t.Run("sections only carry their own account types", func(t *testing.T) {
		l, _ := seedBooks(t)

		bs := l.BalanceSheet()
		require.Len(t, bs.Assets.Accounts, 1)
		require.Len(t, bs.Liabilities.Accounts, 1)
		require.Len(t, bs.Equity.Accounts, 1)
		assert.Equal(t, "1000", bs.Assets.Accounts[0].AccountCode)
		assert.Equal(t, "2000", bs.Liabilities.Accounts[0].AccountCode)
		assert.Equal(t, "3000", bs.Equity.Accounts[0].AccountCode)
	})

	t.Run("revenue-only scenario", func(t *testing.T) {
		l, cash, revenue := setupLedger(t)
		_, err := l.PostTransaction(models.CreateTransactionRequest{
			Description:     "Sale",
			TransactionDate: models.NewDate(2024, 3, 1),
			JournalEntries: []models.CreateJournalEntryRequest{
				debitEntry(cash.ID, "500.00"),
				creditEntry(revenue.ID, "500.00"),
			},
		})
		require.NoError(t, err)

		bs := l.BalanceSheet()
		assert.True(t, bs.TotalAssets.Equal(dec("500.00")))
		assert.True(t, bs.TotalLiabilitiesAndEquity.IsZero())
		assert.True(t, bs.NetIncome.Equal(dec("500.00")))
		assert.True(t, bs.IsBalanced)
	})
}

func TestIncomeStatement(t *testing.T) {
	t.Run("whole history", func(t *testing.T) {
		l, _ := seedBooks(t)

		is := l.IncomeStatement(nil, nil)
		assert.True(t, is.Revenue.Total.Equal(dec("1000.00")))
		assert.True(t, is.Expenses.Total.Equal(dec("300.00")))
		assert.True(t, is.NetIncome.Equal(dec("700.00")))
	})

	t.Run("date range restricts to transactions in range", func(t *testing.T) {
		l, _ := seedBooks(t)

		start := models.NewDate(2024, 2, 1)
		end := models.NewDate(2024, 2, 28)
		is := l.IncomeStatement(&start, &end)
		assert.True(t, is.Revenue.Total.Equal(dec("400.00")))
		assert.True(t, is.Expenses.Total.Equal(dec("300.00")))
		assert.True(t, is.NetIncome.Equal(dec("100.00")))
	})

	t.Run("empty range yields zeros", func(t *testing.T) {
		l, _ := seedBooks(t)

		start := models.NewDate(2025, 1, 1)
		is := l.IncomeStatement(&start, nil)
		assert.True(t, is.Revenue.Total.IsZero())
		assert.True(t, is.Expenses.Total.IsZero())
		assert.True(t, is.NetIncome.IsZero())
	})
}

func TestSummary(t *testing.T) {
	l, _ := seedBooks(t)

	s := l.Summary()
	assert.True(t, s.TotalAssets.Equal(dec("1700.00")))
	assert.True(t, s.TotalLiabilities.Equal(dec("1000.00")))
	assert.True(t, s.TotalEquity.IsZero())
	assert.True(t, s.TotalRevenue.Equal(dec("1000.00")))
	assert.True(t, s.TotalExpenses.Equal(dec("300.00")))
	assert.True(t, s.NetIncome.Equal(dec("700.00")))
	assert.True(t, s.IsBalanced)
}

func TestAccountStatement(t *testing.T) {
	t.Run("full history with running balance", func(t *testing.T) {
		l, accounts := seedBooks(t)

		statement, err := l.AccountStatement(accounts["1000"].ID, nil, nil)
		require.NoError(t, err)

		assert.True(t, statement.OpeningBalance.IsZero())
		assert.True(t, statement.ClosingBalance.Equal(dec("1700.00")))
		assert.True(t, statement.TotalDebits.Equal(dec("2000.00")))
		assert.True(t, statement.TotalCredits.Equal(dec("300.00")))
		require.Len(t, statement.Entries, 4)
		assert.True(t, statement.Entries[len(statement.Entries)-1].RunningBalance.Equal(dec("1700.00")))
	})

	t.Run("ranged statement carries an opening balance", func(t *testing.T) {
		l, accounts := seedBooks(t)

		start := models.NewDate(2024, 2, 1)
		statement, err := l.AccountStatement(accounts["1000"].ID, &start, nil)
		require.NoError(t, err)

		// January: +1000 loan, +600 sale.
		assert.True(t, statement.OpeningBalance.Equal(dec("1600.00")))
		assert.True(t, statement.ClosingBalance.Equal(dec("1700.00")))
		require.Len(t, statement.Entries, 2)
	})

	t.Run("unknown account", func(t *testing.T) {
		l, _ := seedBooks(t)
		_, err := l.AccountStatement("missing", nil, nil)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestReportConsistency(t *testing.T) {
	t.Run("reads without intervening posts are identical", func(t *testing.T) {
		l, _ := seedBooks(t)

		assert.Equal(t, l.TrialBalance(), l.TrialBalance())
		assert.Equal(t, l.BalanceSheet(), l.BalanceSheet())
		assert.Equal(t, l.Summary(), l.Summary())
	})

	t.Run("reports stay balanced after every posting", func(t *testing.T) {
		l, accounts := seedBooks(t)

		for i := 0; i < 5; i++ {
			_, err := l.PostTransaction(models.CreateTransactionRequest{
				Description:     "Recurring sale",
				TransactionDate: models.NewDate(2024, 3, 1+i),
				JournalEntries: []models.CreateJournalEntryRequest{
					debitEntry(accounts["1000"].ID, "10.00"),
					creditEntry(accounts["4000"].ID, "10.00"),
				},
			})
			require.NoError(t, err)

			tb := l.TrialBalance()
			assert.True(t, tb.IsBalanced)
			assert.True(t, l.BalanceSheet().IsBalanced)
			assert.True(t, l.Summary().IsBalanced)
		}
	})
}
