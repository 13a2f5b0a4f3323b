package ledger

import (
	"sync"
	"time"

	"github.com/clearbooks/backend/internal/models"
)

// Ledger is a single in-process double-entry ledger: the chart of accounts,
// per-account running balances and the immutable transaction log. A single
// RWMutex serializes postings against each other and against reads, so every
// read observes a consistent snapshot.
type Ledger struct {
	mu           sync.RWMutex
	accounts     map[string]*models.Account
	accountOrder []string
	codeIndex    map[string]string
	transactions []*models.Transaction
	txIndex      map[string]*models.Transaction
	postings     map[string]int

	now func() time.Time
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts:  make(map[string]*models.Account),
		codeIndex: make(map[string]string),
		txIndex:   make(map[string]*models.Transaction),
		postings:  make(map[string]int),
		now:       time.Now,
	}
}

func cloneAccount(a *models.Account) models.Account {
	out := *a
	if a.ParentID != nil {
		parent := *a.ParentID
		out.ParentID = &parent
	}
	return out
}

func cloneTransaction(tx *models.Transaction) models.Transaction {
	out := *tx
	out.JournalEntries = make([]models.JournalEntry, len(tx.JournalEntries))
	copy(out.JournalEntries, tx.JournalEntries)
	return out
}
