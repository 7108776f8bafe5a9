package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeEntry is one billing event in a student's fee ledger. Entries are keyed
// by receipt number, unique per student, and bucketed by calendar month name.
// Insertion order within a month is (created_at, id) ascending; the receipt
// resolver depends on it to pick "the last entry of the previous month".
type FeeEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_receipt" json:"student_id"`
	ReceiptNo    string    `gorm:"size:50;not null;uniqueIndex:idx_student_receipt" json:"receipt_no"`
	Month        string    `gorm:"size:20;not null;index" json:"month"`
	MonthlyFee   float64   `gorm:"not null" json:"monthly_fee"`
	OtherCharges *float64  `json:"other_charges,omitempty"`
	PaidAmount   float64   `gorm:"not null;default:0" json:"paid_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new fee entry
func (f *FeeEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeeEntry model
func (FeeEntry) TableName() string {
	return "fee_entries"
}

// OtherChargesAmount returns the additional charges, treating absent as zero
func (f *FeeEntry) OtherChargesAmount() float64 {
	if f.OtherCharges == nil {
		return 0
	}
	return *f.OtherCharges
}

// Charged returns the total charged on this entry (monthly fee plus other charges)
func (f *FeeEntry) Charged() float64 {
	return f.MonthlyFee + f.OtherChargesAmount()
}

// Outstanding returns the unpaid balance on this entry. It may be negative
// when the entry was overpaid; the overpayment carries forward as credit.
func (f *FeeEntry) Outstanding() float64 {
	return f.Charged() - f.PaidAmount
}

// FeeReceipt is a value object: the computed, display-ready summary returned
// for a receipt request. It is derived from a student's ledger at read time
// and is never persisted.
type FeeReceipt struct {
	StudentName      string  `json:"student_name"`
	ClassName        string  `json:"class_name"`
	RollNo           string  `json:"roll_no"`
	Address          string  `json:"address"`
	ReceiptNo        string  `json:"receipt_no"`
	Date             string  `json:"date"`
	Month            string  `json:"month"`
	MonthlyFee       float64 `json:"monthly_fee"`
	OtherCharges     float64 `json:"other_charges"`
	PreviousMonthDue float64 `json:"previous_month_due"`
	Total            float64 `json:"total"`
	PaidAmount       float64 `json:"paid_amount"`
	BalanceDue       float64 `json:"balance_due"`
}
