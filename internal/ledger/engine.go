package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearbooks/backend/internal/models"
)

// PostTransaction validates and applies a transaction as a single unit. All
// validation happens before any balance moves: a rejected post leaves every
// account and the transaction log untouched.
func (l *Ledger) PostTransaction(req models.CreateTransactionRequest) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.buildEntries(req.JournalEntries)
	if err != nil {
		return models.Transaction{}, err
	}

	totalDebits, totalCredits := Totals(entries)
	if !totalDebits.Equal(totalCredits) {
		return models.Transaction{}, fmt.Errorf("%w: debits %s, credits %s",
			ErrUnbalanced, totalDebits, totalCredits)
	}

	now := l.now()
	tx := &models.Transaction{
		ID:              uuid.New().String(),
		Description:     req.Description,
		Reference:       req.Reference,
		TransactionDate: req.TransactionDate,
		JournalEntries:  entries,
		TotalDebits:     totalDebits,
		TotalCredits:    totalCredits,
		IsBalanced:      true,
		NetAmount:       totalDebits,
		CreatedAt:       now,
	}
	for i := range tx.JournalEntries {
		tx.JournalEntries[i].ID = uuid.New().String()
		tx.JournalEntries[i].TransactionID = tx.ID
		tx.JournalEntries[i].CreatedAt = now
	}

	applied := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range tx.JournalEntries {
		account := l.accounts[entry.AccountID]
		delta := EntryDelta(account.AccountType, entry)
		account.Balance = account.Balance.Add(delta)
		account.UpdatedAt = now
		applied[account.ID] = applied[account.ID].Add(delta)
	}

	// Post-condition: with the deltas applied, every account balance restated
	// as raw debit-minus-credit must still sum to zero across the ledger. A
	// mismatch is an engine defect, so undo and abort.
	if err := l.checkApplied(); err != nil {
		for id, delta := range applied {
			l.accounts[id].Balance = l.accounts[id].Balance.Sub(delta)
		}
		return models.Transaction{}, err
	}

	l.transactions = append(l.transactions, tx)
	l.txIndex[tx.ID] = tx
	for _, entry := range tx.JournalEntries {
		l.postings[entry.AccountID]++
	}

	return cloneTransaction(tx), nil
}

// buildEntries validates every requested journal entry and normalizes it into
// its posted form with account code/name snapshots. Caller holds the lock.
func (l *Ledger) buildEntries(reqs []models.CreateJournalEntryRequest) ([]models.JournalEntry, error) {
	if len(reqs) < 2 {
		return nil, ErrEmptyTransaction
	}

	entries := make([]models.JournalEntry, 0, len(reqs))
	for i, req := range reqs {
		debit := decimal.Zero
		if req.DebitAmount != nil {
			debit = *req.DebitAmount
		}
		credit := decimal.Zero
		if req.CreditAmount != nil {
			credit = *req.CreditAmount
		}

		switch {
		case debit.IsNegative() || credit.IsNegative():
			return nil, newEntryError(i, ErrInvalidEntry, "amounts must not be negative")
		case debit.IsPositive() && credit.IsPositive():
			return nil, newEntryError(i, ErrInvalidEntry, "entry cannot carry both a debit and a credit amount")
		case debit.IsZero() && credit.IsZero():
			return nil, newEntryError(i, ErrInvalidEntry, "entry must carry a positive debit or credit amount")
		}

		account, ok := l.accounts[req.AccountID]
		if !ok {
			return nil, newEntryError(i, ErrUnknownAccount,
				fmt.Sprintf("account %s does not exist", req.AccountID))
		}

		entries = append(entries, models.JournalEntry{
			AccountID:    account.ID,
			AccountCode:  account.Code,
			AccountName:  account.Name,
			DebitAmount:  debit,
			CreditAmount: credit,
			Description:  req.Description,
		})
	}
	return entries, nil
}

// checkApplied restates every stored balance in raw debit-minus-credit terms
// and verifies the ledger-wide sum is zero. Balances only ever move through
// balanced postings, so any nonzero sum means a delta was misapplied. Caller
// holds the lock.
func (l *Ledger) checkApplied() error {
	var net decimal.Decimal
	for _, account := range l.accounts {
		if account.AccountType.IsDebitNormal() {
			net = net.Add(account.Balance)
		} else {
			net = net.Sub(account.Balance)
		}
	}
	if !net.IsZero() {
		return fmt.Errorf("%w: account balances net to %s, want 0", ErrInvariantViolation, net)
	}
	return nil
}

// GetTransaction looks up a posted transaction by id.
func (l *Ledger) GetTransaction(id string) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tx, ok := l.txIndex[id]
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return cloneTransaction(tx), nil
}

// ListTransactions returns posted transactions matching all set filters,
// most recent first: by transaction date, then by posting order.
func (l *Ledger) ListTransactions(filter models.TransactionFilter) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	needle := strings.ToLower(filter.DescriptionContains)

	matched := make([]models.Transaction, 0, len(l.transactions))
	for i := len(l.transactions) - 1; i >= 0; i-- {
		tx := l.transactions[i]
		if filter.StartDate != nil && tx.TransactionDate.Before(filter.StartDate.Time) {
			continue
		}
		if filter.EndDate != nil && tx.TransactionDate.After(filter.EndDate.Time) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(tx.Description), needle) {
			continue
		}
		matched = append(matched, cloneTransaction(tx))
	}

	// Reverse posting order already puts newer postings first; a stable sort
	// by date keeps that ordering within a day.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TransactionDate.After(matched[j].TransactionDate.Time)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched
}

// ValidateTransaction dry-runs a transaction request: it reports every
// validation failure at once and never touches ledger state.
func (l *Ledger) ValidateTransaction(req models.CreateTransactionRequest) models.ValidationResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := models.ValidationResult{Errors: []string{}}

	if len(req.JournalEntries) < 2 {
		result.Errors = append(result.Errors, ErrEmptyTransaction.Error())
	}

	var totalDebits, totalCredits decimal.Decimal
	for i, entry := range req.JournalEntries {
		debit := decimal.Zero
		if entry.DebitAmount != nil {
			debit = *entry.DebitAmount
		}
		credit := decimal.Zero
		if entry.CreditAmount != nil {
			credit = *entry.CreditAmount
		}

		switch {
		case debit.IsNegative() || credit.IsNegative():
			result.Errors = append(result.Errors,
				newEntryError(i, ErrInvalidEntry, "amounts must not be negative").Error())
		case debit.IsPositive() && credit.IsPositive():
			result.Errors = append(result.Errors,
				newEntryError(i, ErrInvalidEntry, "entry cannot carry both a debit and a credit amount").Error())
		case debit.IsZero() && credit.IsZero():
			result.Errors = append(result.Errors,
				newEntryError(i, ErrInvalidEntry, "entry must carry a positive debit or credit amount").Error())
		}

		if _, ok := l.accounts[entry.AccountID]; !ok {
			result.Errors = append(result.Errors,
				fmt.Sprintf("journal entry %d: account %s does not exist", i+1, entry.AccountID))
		}

		totalDebits = totalDebits.Add(debit)
		totalCredits = totalCredits.Add(credit)
	}

	if !totalDebits.Equal(totalCredits) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"transaction does not balance: debits %s, credits %s", totalDebits, totalCredits))
	}

	result.Valid = len(result.Errors) == 0
	if result.Valid {
		result.TotalAmount = &totalDebits
	}
	return result
}
