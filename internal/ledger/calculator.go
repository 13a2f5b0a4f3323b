package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/clearbooks/backend/internal/models"
)

// Delta computes the signed change a debit/credit pair applies to an account
// balance, in normal-balance sign. Asset and expense balances grow on debit,
// liability, equity and revenue balances grow on credit.
func Delta(accountType models.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// EntryDelta applies Delta to a posted journal entry.
func EntryDelta(accountType models.AccountType, entry models.JournalEntry) decimal.Decimal {
	return Delta(accountType, entry.DebitAmount, entry.CreditAmount)
}

// Totals sums the debit and credit columns of a set of journal entries.
func Totals(entries []models.JournalEntry) (debits, credits decimal.Decimal) {
	for _, e := range entries {
		debits = debits.Add(e.DebitAmount)
		credits = credits.Add(e.CreditAmount)
	}
	return debits, credits
}

// IsBalanced reports whether total debits equal total credits. The comparison
// is exact decimal equality, never a floating-point tolerance.
func IsBalanced(entries []models.JournalEntry) bool {
	debits, credits := Totals(entries)
	return debits.Equal(credits)
}

// SplitBalance projects a normal-sign balance back into trial balance
// columns. A positive balance lands in the account's normal column, a
// negative one in the opposite column, zero in neither.
func SplitBalance(accountType models.AccountType, balance decimal.Decimal) (debit, credit decimal.Decimal) {
	if balance.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	debitSide := accountType.IsDebitNormal()
	if balance.IsNegative() {
		debitSide = !debitSide
	}
	if debitSide {
		return balance.Abs(), decimal.Zero
	}
	return decimal.Zero, balance.Abs()
}
