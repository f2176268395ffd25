package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the persisted payment state of an invoice
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
)

// Invoice is a billing document issued against a contract
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	ContractID    uuid.UUID
	CustomerID    uuid.UUID
	TotalAmount   float64
	PaidAmount    float64
	PaymentStatus PaymentStatus
	InvoiceDate   time.Time
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Contract Contract
	Customer Customer
}

// RemainingAmount is the outstanding balance on the invoice.
func (i *Invoice) RemainingAmount() float64 {
	remaining := i.TotalAmount - i.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordPayment applies a settled payment to the invoice and rolls the
// payment status forward. Overpayment is clamped to the invoice total.
func (i *Invoice) RecordPayment(amount float64) {
	if amount <= 0 {
		return
	}
	i.PaidAmount += amount
	if i.PaidAmount >= i.TotalAmount {
		i.PaidAmount = i.TotalAmount
		i.PaymentStatus = PaymentStatusPaid
		return
	}
	i.PaymentStatus = PaymentStatusPartiallyPaid
}
