package services

import (
	"context"
	"log"

	"github.com/clearbooks/backend/internal/ledger"
	"github.com/clearbooks/backend/internal/models"
)

// LedgerService is the operation surface the HTTP layer talks to. It wraps
// the in-memory ledger core and, on successful mutations, feeds the Postgres
// archive and busts the Redis report cache. Archive failures are logged, not
// returned: the ledger has already committed and stays authoritative.
type LedgerService struct {
	ledger  *ledger.Ledger
	archive *ArchiveService
	cache   *ReportCacheService
}

func NewLedgerService(l *ledger.Ledger, archive *ArchiveService, cache *ReportCacheService) *LedgerService {
	return &LedgerService{
		ledger:  l,
		archive: archive,
		cache:   cache,
	}
}

// CreateAccount registers an account and archives it. Cached reports are
// invalidated because the trial balance lists zero-balance accounts.
func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	account, err := s.ledger.CreateAccount(req)
	if err != nil {
		return models.Account{}, err
	}
	if err := s.archive.RecordAccount(account); err != nil {
		log.Printf("Failed to archive account %s: %v", account.Code, err)
	}
	s.cache.Invalidate(ctx)
	return account, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, id string) (models.Account, error) {
	return s.ledger.GetAccount(id)
}

func (s *LedgerService) ListAccounts(ctx context.Context, accountType *models.AccountType) ([]models.Account, error) {
	return s.ledger.ListAccounts(accountType)
}

// UpdateAccount changes the account name or parent, archives the update and
// invalidates cached reports so they pick up the new account details.
func (s *LedgerService) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (models.Account, error) {
	account, err := s.ledger.UpdateAccount(id, req)
	if err != nil {
		return models.Account{}, err
	}
	if err := s.archive.RecordUpdate(account); err != nil {
		log.Printf("Failed to archive update of account %s: %v", account.Code, err)
	}
	s.cache.Invalidate(ctx)
	return account, nil
}

// DeleteAccount removes a never-posted account from the ledger and archive.
func (s *LedgerService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.ledger.DeleteAccount(id); err != nil {
		return err
	}
	if err := s.archive.RecordDeletion(id); err != nil {
		log.Printf("Failed to archive deletion of account %s: %v", id, err)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// PostTransaction posts atomically, then archives the transaction with the
// post-posting balances of every touched account and invalidates cached
// reports.
func (s *LedgerService) PostTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	posted, err := s.ledger.PostTransaction(req)
	if err != nil {
		return models.Transaction{}, err
	}

	touched := make([]models.Account, 0, len(posted.JournalEntries))
	seen := make(map[string]bool)
	for _, entry := range posted.JournalEntries {
		if seen[entry.AccountID] {
			continue
		}
		seen[entry.AccountID] = true
		if account, err := s.ledger.GetAccount(entry.AccountID); err == nil {
			touched = append(touched, account)
		}
	}
	if err := s.archive.RecordTransaction(posted, touched); err != nil {
		log.Printf("Failed to archive transaction %s: %v", posted.ID, err)
	}

	s.cache.Invalidate(ctx)
	return posted, nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	return s.ledger.GetTransaction(id)
}

func (s *LedgerService) ListTransactions(ctx context.Context, filter models.TransactionFilter) []models.Transaction {
	return s.ledger.ListTransactions(filter)
}

// ValidateTransaction dry-runs a posting without touching state.
func (s *LedgerService) ValidateTransaction(ctx context.Context, req models.CreateTransactionRequest) models.ValidationResult {
	return s.ledger.ValidateTransaction(req)
}

// TrialBalance serves the report from cache when possible.
func (s *LedgerService) TrialBalance(ctx context.Context) models.TrialBalance {
	var cached models.TrialBalance
	if s.cache.Get(ctx, CacheKeyTrialBalance, &cached) {
		return cached
	}
	report := s.ledger.TrialBalance()
	s.cache.Set(ctx, CacheKeyTrialBalance, report)
	return report
}

func (s *LedgerService) BalanceSheet(ctx context.Context) models.BalanceSheet {
	var cached models.BalanceSheet
	if s.cache.Get(ctx, CacheKeyBalanceSheet, &cached) {
		return cached
	}
	report := s.ledger.BalanceSheet()
	s.cache.Set(ctx, CacheKeyBalanceSheet, report)
	return report
}

// IncomeStatement only caches the un-ranged report; ranged requests vary by
// query and are computed fresh.
func (s *LedgerService) IncomeStatement(ctx context.Context, startDate, endDate *models.Date) models.IncomeStatement {
	if startDate != nil || endDate != nil {
		return s.ledger.IncomeStatement(startDate, endDate)
	}

	var cached models.IncomeStatement
	if s.cache.Get(ctx, CacheKeyIncomeStatement, &cached) {
		return cached
	}
	report := s.ledger.IncomeStatement(nil, nil)
	s.cache.Set(ctx, CacheKeyIncomeStatement, report)
	return report
}

func (s *LedgerService) Summary(ctx context.Context) models.Summary {
	var cached models.Summary
	if s.cache.Get(ctx, CacheKeySummary, &cached) {
		return cached
	}
	report := s.ledger.Summary()
	s.cache.Set(ctx, CacheKeySummary, report)
	return report
}

func (s *LedgerService) AccountStatement(ctx context.Context, accountID string, startDate, endDate *models.Date) (models.AccountStatement, error) {
	return s.ledger.AccountStatement(accountID, startDate, endDate)
}
