package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DuesStatus is the lifecycle state of a dues record.
type DuesStatus string

const (
	DuesStatusPending DuesStatus = "pending"
	DuesStatusPaid    DuesStatus = "paid"
	DuesStatusExempt  DuesStatus = "exempt"
)

// String returns the string representation of the DuesStatus.
func (s DuesStatus) String() string {
	return string(s)
}

// Label returns the status as printed on documents.
func (s DuesStatus) Label() string {
	switch s {
	case DuesStatusPaid:
		return "Pago"
	case DuesStatusExempt:
		return "Isento"
	default:
		return "Pendente"
	}
}

// Competency years outside MinDuesYear..MaxDuesYear are rejected.
const (
	MinDuesYear = 1900
	MaxDuesYear = 2100
)

// ErrMalformedCompetency is returned when a competency text does not name a calendar month.
var ErrMalformedCompetency = errors.New("malformed competency")

// DuesRecord is the monthly contribution a member owes for one competency.
// At most one record exists per member and competency.
type DuesRecord struct {
	ID            uuid.UUID       `json:"id"`
	MemberID      uuid.UUID       `json:"member_id"`
	MemberName    string          `json:"member_name,omitempty"` // Filled on reads that join the member
	Competency    time.Time       `json:"competency"`            // First day of the month, UTC
	Amount        decimal.Decimal `json:"amount"`
	Status        DuesStatus      `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Note          string          `json:"note,omitempty"`
	ReceiptNumber *int64          `json:"receipt_number,omitempty"` // Assigned once on first payment
	ReceiptToken  string          `json:"receipt_token,omitempty"`  // Assigned once on first payment
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsPaid reports whether the record has been paid.
func (d *DuesRecord) IsPaid() bool {
	return d.Status == DuesStatusPaid
}

// IsPending reports whether the record can still be paid, exempted or deleted.
func (d *DuesRecord) IsPending() bool {
	return d.Status == DuesStatusPending
}

// CompetencyLabel renders the competency as MM/YYYY.
func (d *DuesRecord) CompetencyLabel() string {
	return FormatCompetency(d.Competency)
}

// NewCompetency returns the period key for year and month.
func NewCompetency(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// FormatCompetency renders a competency as MM/YYYY.
func FormatCompetency(competency time.Time) string {
	return competency.Format("01/2006")
}

// ParseCompetency reads a month/year text in any of the forms YYYY-MM, YYYY/MM,
// MM-YYYY or MM/YYYY. The four digit part is taken as the year.
func ParseCompetency(text string) (time.Time, error) {
	text = strings.TrimSpace(text)

	for _, sep := range []string{"-", "/"} {
		if !strings.Contains(text, sep) {
			continue
		}

		parts := strings.Split(text, sep)
		if len(parts) != 2 {
			break
		}

		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if !isDigits(a) || !isDigits(b) {
			continue
		}

		var yearText, monthText string
		switch {
		case len(a) == 4:
			yearText, monthText = a, b
		case len(b) == 4:
			yearText, monthText = b, a
		default:
			continue
		}

		year, yearErr := strconv.Atoi(yearText)
		month, monthErr := strconv.Atoi(monthText)
		if yearErr != nil || monthErr != nil || !IsValidDuesYear(year) || month < 1 || month > 12 {
			return time.Time{}, errors.Wrapf(ErrMalformedCompetency, "%q", text)
		}

		return NewCompetency(year, time.Month(month)), nil
	}

	return time.Time{}, errors.Wrapf(ErrMalformedCompetency, "%q", text)
}

// IsValidDuesYear reports whether year is within MinDuesYear..MaxDuesYear.
func IsValidDuesYear(year int) bool {
	return year >= MinDuesYear && year <= MaxDuesYear
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
