package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxReportDebtors caps the debtor list of a period report.
const MaxReportDebtors = 50

// Debtor is a member with at least one pending dues record in the period.
type Debtor struct {
	MemberID           uuid.UUID `json:"member_id"`
	Name               string    `json:"name"`
	NationalID         string    `json:"national_id"`
	RegistrationNumber string    `json:"registration_number"`
}

// PeriodReport aggregates dues and ledger figures for a period.
type PeriodReport struct {
	Filter           PeriodFilter    `json:"filter"`
	TotalMembers     int64           `json:"total_members"`
	PaidDuesCount    int64           `json:"paid_dues_count"`
	PendingDuesCount int64           `json:"pending_dues_count"`
	PaidDuesAmount   decimal.Decimal `json:"paid_dues_amount"`
	Ledger           LedgerTotals    `json:"ledger"`
	Debtors          []*Debtor       `json:"debtors"`
}
