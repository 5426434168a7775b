// pkg/invoice/invoice.go

package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultClient is used when the operator leaves the client name blank.
const DefaultClient = "Bridge Baker"

// Record is one issued invoice. Records are written once at creation
// time and never updated or deleted.
type Record struct {
	InvoiceNumber string          `gorm:"primaryKey;size:32"`
	Date          string          `gorm:"size:32;not null"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	Quantity      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	Rate          decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	Client        string          `gorm:"size:255;not null"`
	CreatedAt     time.Time
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (Record) TableName() string { return "invoices" }

// New builds a record from operator input. A blank client falls back to
// DefaultClient; the amount is fixed at quantity * rate and never
// recomputed afterwards.
func New(number, date string, quantity, rate decimal.Decimal, client string) Record {
	if client == "" {
		client = DefaultClient
	}
	return Record{
		InvoiceNumber: number,
		Date:          date,
		Amount:        quantity.Mul(rate),
		Quantity:      quantity,
		Rate:          rate,
		Client:        client,
	}
}
