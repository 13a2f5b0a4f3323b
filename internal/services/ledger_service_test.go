package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks/backend/internal/ledger"
	"github.com/clearbooks/backend/internal/models"
)

// newTestService runs the facade without archive database or cache backend;
// both degrade to no-ops.
func newTestService() *LedgerService {
	return NewLedgerService(ledger.New(), NewArchiveService(nil), NewReportCacheService(nil))
}

func mustDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestLedgerService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	cash, err := service.CreateAccount(ctx, models.CreateAccountRequest{
		Code: "1000", Name: "Cash", AccountType: models.AccountTypeAsset,
	})
	require.NoError(t, err)
	revenue, err := service.CreateAccount(ctx, models.CreateAccountRequest{
		Code: "4000", Name: "Revenue", AccountType: models.AccountTypeRevenue,
	})
	require.NoError(t, err)

	t.Run("post and read back", func(t *testing.T) {
		posted, err := service.PostTransaction(ctx, models.CreateTransactionRequest{
			Description:     "Sale",
			TransactionDate: models.NewDate(2024, 3, 1),
			JournalEntries: []models.CreateJournalEntryRequest{
				{AccountID: cash.ID, DebitAmount: mustDec("500.00")},
				{AccountID: revenue.ID, CreditAmount: mustDec("500.00")},
			},
		})
		require.NoError(t, err)
		assert.True(t, posted.IsBalanced)

		fetched, err := service.GetTransaction(ctx, posted.ID)
		require.NoError(t, err)
		assert.Equal(t, posted.ID, fetched.ID)

		account, err := service.GetAccount(ctx, cash.ID)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("500.00")))
	})

	t.Run("rejection leaves state untouched", func(t *testing.T) {
		before, err := service.GetAccount(ctx, cash.ID)
		require.NoError(t, err)

		_, err = service.PostTransaction(ctx, models.CreateTransactionRequest{
			Description:     "Unbalanced",
			TransactionDate: models.NewDate(2024, 3, 2),
			JournalEntries: []models.CreateJournalEntryRequest{
				{AccountID: cash.ID, DebitAmount: mustDec("100.00")},
				{AccountID: revenue.ID, CreditAmount: mustDec("90.00")},
			},
		})
		assert.ErrorIs(t, err, ledger.ErrUnbalanced)

		after, err := service.GetAccount(ctx, cash.ID)
		require.NoError(t, err)
		assert.True(t, before.Balance.Equal(after.Balance))
	})

	t.Run("reports flow through the facade", func(t *testing.T) {
		tb := service.TrialBalance(ctx)
		assert.True(t, tb.IsBalanced)

		bs := service.BalanceSheet(ctx)
		assert.True(t, bs.IsBalanced)

		is := service.IncomeStatement(ctx, nil, nil)
		assert.True(t, is.NetIncome.Equal(decimal.RequireFromString("500.00")))

		summary := service.Summary(ctx)
		assert.True(t, summary.IsBalanced)

		statement, err := service.AccountStatement(ctx, cash.ID, nil, nil)
		require.NoError(t, err)
		assert.Len(t, statement.Entries, 1)
	})

	t.Run("dry run validates without posting", func(t *testing.T) {
		countBefore := len(service.ListTransactions(ctx, models.TransactionFilter{}))

		result := service.ValidateTransaction(ctx, models.CreateTransactionRequest{
			Description:     "Dry run",
			TransactionDate: models.NewDate(2024, 3, 3),
			JournalEntries: []models.CreateJournalEntryRequest{
				{AccountID: cash.ID, DebitAmount: mustDec("10.00")},
				{AccountID: revenue.ID, CreditAmount: mustDec("10.00")},
			},
		})
		assert.True(t, result.Valid)
		assert.Len(t, service.ListTransactions(ctx, models.TransactionFilter{}), countBefore)
	})

	t.Run("update and delete", func(t *testing.T) {
		name := "Cash on Hand"
		renamed, err := service.UpdateAccount(ctx, cash.ID, models.UpdateAccountRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Cash on Hand", renamed.Name)

		// Cash has postings, so deletion must be refused.
		assert.ErrorIs(t, service.DeleteAccount(ctx, cash.ID), ledger.ErrHasPostings)

		spare, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			Code: "1900", Name: "Unused", AccountType: models.AccountTypeAsset,
		})
		require.NoError(t, err)
		assert.NoError(t, service.DeleteAccount(ctx, spare.ID))
	})
}

// Account mutations must bust cached reports the same way postings do: a
// rename that left the old trial balance cached would serve the stale name
// for the full TTL.
func TestLedgerService_AccountMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	service := NewLedgerService(ledger.New(), NewArchiveService(nil), NewReportCacheService(client))

	mock.ExpectDel(reportCacheKeys...).SetVal(int64(len(reportCacheKeys)))
	cash, err := service.CreateAccount(ctx, models.CreateAccountRequest{
		Code: "1000", Name: "Cash", AccountType: models.AccountTypeAsset,
	})
	require.NoError(t, err)

	trialBalanceJSON := func(name string) []byte {
		data, err := json.Marshal(models.TrialBalance{
			Entries: []models.TrialBalanceEntry{{
				AccountID:   cash.ID,
				AccountCode: "1000",
				AccountName: name,
				AccountType: models.AccountTypeAsset,
			}},
			IsBalanced: true,
		})
		require.NoError(t, err)
		return data
	}

	// Prime the cache with the current trial balance.
	mock.ExpectGet(CacheKeyTrialBalance).RedisNil()
	mock.ExpectSet(CacheKeyTrialBalance, trialBalanceJSON("Cash"), 5*time.Minute).SetVal("OK")
	primed := service.TrialBalance(ctx)
	require.Len(t, primed.Entries, 1)

	// The rename must invalidate, and the next read must recompute with the
	// new name instead of serving the cached report.
	name := "Petty Cash"
	mock.ExpectDel(reportCacheKeys...).SetVal(int64(len(reportCacheKeys)))
	_, err = service.UpdateAccount(ctx, cash.ID, models.UpdateAccountRequest{Name: &name})
	require.NoError(t, err)

	mock.ExpectGet(CacheKeyTrialBalance).RedisNil()
	mock.ExpectSet(CacheKeyTrialBalance, trialBalanceJSON("Petty Cash"), 5*time.Minute).SetVal("OK")
	fresh := service.TrialBalance(ctx)
	require.Len(t, fresh.Entries, 1)
	assert.Equal(t, "Petty Cash", fresh.Entries[0].AccountName)

	mock.ExpectDel(reportCacheKeys...).SetVal(int64(len(reportCacheKeys)))
	require.NoError(t, service.DeleteAccount(ctx, cash.ID))

	assert.NoError(t, mock.ExpectationsWereMet())
}
