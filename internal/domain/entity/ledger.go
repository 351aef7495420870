package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryType tells income from expense.
type LedgerEntryType string

const (
	LedgerEntryIncome  LedgerEntryType = "income"
	LedgerEntryExpense LedgerEntryType = "expense"
)

// LedgerCategoryDues is the category of entries posted by dues payments.
const LedgerCategoryDues = "Dues"

// IsValid checks if the LedgerEntryType is a valid value.
func (t LedgerEntryType) IsValid() bool {
	return t == LedgerEntryIncome || t == LedgerEntryExpense
}

// LedgerEntry is a cash movement of the association.
// DuesRecordID is set on income entries posted by a dues payment; such entries are read-only.
type LedgerEntry struct {
	ID           uuid.UUID       `json:"id"`
	Type         LedgerEntryType `json:"type"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	DuesRecordID *uuid.UUID      `json:"dues_record_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsDuesPosting reports whether the entry was generated by a dues payment.
func (e *LedgerEntry) IsDuesPosting() bool {
	return e.DuesRecordID != nil
}

// LedgerTotals aggregates the entries of a period.
type LedgerTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// NewLedgerTotals derives the balance from income and expense.
func NewLedgerTotals(income, expense decimal.Decimal) LedgerTotals {
	return LedgerTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
