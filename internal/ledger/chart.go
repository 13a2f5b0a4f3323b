package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearbooks/backend/internal/models"
)

// CreateAccount registers a new account with a zero balance. The code must be
// unique across the chart and the type must be one of the five recognized
// account types. A parent reference, when given, must resolve.
func (l *Ledger) CreateAccount(req models.CreateAccountRequest) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	accountType := models.AccountType(strings.ToLower(string(req.AccountType)))
	if !accountType.IsValid() {
		return models.Account{}, ErrInvalidType
	}
	if _, exists := l.codeIndex[req.Code]; exists {
		return models.Account{}, ErrDuplicateCode
	}
	if req.ParentID != nil {
		if _, ok := l.accounts[*req.ParentID]; !ok {
			return models.Account{}, ErrUnknownParent
		}
	}

	now := l.now()
	account := &models.Account{
		ID:          uuid.New().String(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: accountType,
		ParentID:    req.ParentID,
		Balance:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	l.accounts[account.ID] = account
	l.accountOrder = append(l.accountOrder, account.ID)
	l.codeIndex[account.Code] = account.ID

	return cloneAccount(account), nil
}

// GetAccount looks up an account by id.
func (l *Ledger) GetAccount(id string) (models.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

// GetAccountByCode looks up an account by its unique code.
func (l *Ledger) GetAccountByCode(code string) (models.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	id, ok := l.codeIndex[code]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return cloneAccount(l.accounts[id]), nil
}

// ListAccounts returns accounts in insertion order, optionally filtered by
// type. Insertion order is stable so reports are deterministic.
func (l *Ledger) ListAccounts(accountType *models.AccountType) ([]models.Account, error) {
	if accountType != nil && !accountType.IsValid() {
		return nil, ErrInvalidType
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	accounts := make([]models.Account, 0, len(l.accountOrder))
	for _, id := range l.accountOrder {
		account := l.accounts[id]
		if accountType != nil && account.AccountType != *accountType {
			continue
		}
		accounts = append(accounts, cloneAccount(account))
	}
	return accounts, nil
}

// UpdateAccount changes an account's name or parent reference; a nil field is
// left unchanged. Code, type and balance are immutable once registered. A new
// parent must resolve and cannot be the account itself.
func (l *Ledger) UpdateAccount(id string, req models.UpdateAccountRequest) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return models.Account{}, ErrSelfParent
		}
		if _, ok := l.accounts[*req.ParentID]; !ok {
			return models.Account{}, ErrUnknownParent
		}
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.ParentID != nil {
		parentID := *req.ParentID
		account.ParentID = &parentID
	}
	account.UpdatedAt = l.now()
	return cloneAccount(account), nil
}

// DeleteAccount removes an account that has never been posted to. An account
// referenced by any journal entry is history and cannot be dropped.
func (l *Ledger) DeleteAccount(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	if l.postings[id] > 0 {
		return ErrHasPostings
	}

	delete(l.accounts, id)
	delete(l.codeIndex, account.Code)
	for i, accountID := range l.accountOrder {
		if accountID == id {
			l.accountOrder = append(l.accountOrder[:i], l.accountOrder[i+1:]...)
			break
		}
	}
	return nil
}
