package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/clearbooks/backend/internal/models"
)

// ArchiveService mirrors the in-memory ledger into Postgres as a write-behind
// record. The ledger stays the source of truth; the archive exists so posted
// history survives restarts and can be inspected with plain SQL. A nil db
// turns every call into a no-op, matching how the Redis cache degrades.
type ArchiveService struct {
	db *sql.DB
}

func NewArchiveService(db *sql.DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// EnsureSchema creates the archive tables when they are missing.
func (s *ArchiveService) EnsureSchema() error {
	if s.db == nil {
		return nil
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			account_type TEXT NOT NULL,
			parent_id TEXT,
			balance NUMERIC(20,4) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			reference TEXT,
			transaction_date DATE NOT NULL,
			total_debits NUMERIC(20,4) NOT NULL,
			total_credits NUMERIC(20,4) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id TEXT PRIMARY KEY,
			transaction_id TEXT NOT NULL REFERENCES transactions(id),
			account_id TEXT NOT NULL,
			account_code TEXT NOT NULL,
			debit_amount NUMERIC(20,4) NOT NULL,
			credit_amount NUMERIC(20,4) NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("archive schema: %w", err)
		}
	}
	return nil
}

// RecordAccount archives a newly registered account.
func (s *ArchiveService) RecordAccount(account models.Account) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO accounts (id, code, name, account_type, parent_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.Code, account.Name, string(account.AccountType),
		account.ParentID, account.Balance, account.CreatedAt, account.UpdatedAt)
	return err
}

// RecordUpdate archives an account's new name and parent.
func (s *ArchiveService) RecordUpdate(account models.Account) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		UPDATE accounts SET name = $1, parent_id = $2, updated_at = $3 WHERE id = $4`,
		account.Name, account.ParentID, account.UpdatedAt, account.ID)
	return err
}

// RecordDeletion archives the removal of a never-posted account.
func (s *ArchiveService) RecordDeletion(accountID string) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`DELETE FROM accounts WHERE id = $1`, accountID)
	return err
}

// RecordTransaction archives a posted transaction with its entries and the
// post-posting balances of the touched accounts, all in one database
// transaction so the archive never holds half a posting.
func (s *ArchiveService) RecordTransaction(posted models.Transaction, touched []models.Account) error {
	if s.db == nil {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO transactions (id, description, reference, transaction_date, total_debits, total_credits, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		posted.ID, posted.Description, posted.Reference, posted.TransactionDate.Time,
		posted.TotalDebits, posted.TotalCredits, posted.CreatedAt); err != nil {
		return err
	}

	for _, entry := range posted.JournalEntries {
		if _, err := tx.Exec(`
			INSERT INTO journal_entries (id, transaction_id, account_id, account_code, debit_amount, credit_amount, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			entry.ID, entry.TransactionID, entry.AccountID, entry.AccountCode,
			entry.DebitAmount, entry.CreditAmount, entry.Description, entry.CreatedAt); err != nil {
			return err
		}
	}

	for _, account := range touched {
		if _, err := tx.Exec(`
			UPDATE accounts SET balance = $1, updated_at = $2 WHERE id = $3`,
			account.Balance, time.Now(), account.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
