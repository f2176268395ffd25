package collections

import (
	"context"
	"math"
	"time"

	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/pkg/logger"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// InvoiceClass is the derived collection status of a single invoice.
// It refines the persisted payment status with an overdue check.
type InvoiceClass string

const (
	ClassPaid          InvoiceClass = "paid"
	ClassPartiallyPaid InvoiceClass = "partially_paid"
	ClassOverdue       InvoiceClass = "overdue"
	ClassUnpaid        InvoiceClass = "unpaid"
)

// Classify derives the collection status of an invoice at a point in
// time. Fully paid wins outright; a partial payment is reported as
// partially_paid even when the invoice is past due; past-due invoices
// with no payment are overdue; everything else is unpaid.
func Classify(inv *entity.Invoice, now time.Time) InvoiceClass {
	if inv.PaymentStatus == entity.PaymentStatusPaid {
		return ClassPaid
	}
	if inv.PaidAmount > 0 && inv.PaidAmount < inv.TotalAmount {
		return ClassPartiallyPaid
	}
	due := inv.InvoiceDate
	if inv.DueDate != nil {
		due = *inv.DueDate
	}
	if due.Before(now) {
		return ClassOverdue
	}
	return ClassUnpaid
}

// SelectWindow picks the invoices driving this month's report. It
// prefers invoices dated in the current calendar month; when that set
// is empty it widens to every invoice that is not fully paid, so
// overdue amounts from prior months are never silently hidden. The
// widening is a business rule, not an error path.
func SelectWindow(invoices []*entity.Invoice, now time.Time) (selected []*entity.Invoice, fallback bool) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	for _, inv := range invoices {
		if !inv.InvoiceDate.Before(monthStart) && inv.InvoiceDate.Before(monthEnd) {
			selected = append(selected, inv)
		}
	}
	if len(selected) > 0 {
		return selected, false
	}

	for _, inv := range invoices {
		if inv.PaymentStatus != entity.PaymentStatusPaid {
			selected = append(selected, inv)
		}
	}
	return selected, true
}

// ComputeStats aggregates the selected invoices. The collection rate is
// a whole percentage clamped to [0,100], and 0 when nothing is due.
func ComputeStats(invoices []*entity.Invoice, fallback bool) dto.CollectionsStatsResponse {
	var totalDue, totalCollected float64
	for _, inv := range invoices {
		totalDue += inv.TotalAmount
		totalCollected += inv.PaidAmount
	}

	rate := 0
	if totalDue > 0 {
		rate = int(math.Round(100 * totalCollected / totalDue))
		if rate < 0 {
			rate = 0
		}
		if rate > 100 {
			rate = 100
		}
	}

	return dto.CollectionsStatsResponse{
		TotalDue:        totalDue,
		TotalCollected:  totalCollected,
		TotalPending:    totalDue - totalCollected,
		CollectionRate:  rate,
		InvoiceCount:    len(invoices),
		FallbackApplied: fallback,
	}
}

// Aggregator builds the monthly collections view for an employee's
// assigned contracts.
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new collections aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// MonthlyForEmployee loads every invoice on the employee's contracts and
// aggregates the current month's collections, widening to all unpaid
// invoices when the month is empty.
func (a *Aggregator) MonthlyForEmployee(ctx context.Context, uow unitofwork.UnitOfWork, employeeId uuid.UUID, now time.Time) (*dto.MonthlyCollectionsResponse, error) {
	invoices, err := uow.InvoiceRepository().FindAll(ctx,
		specification.ForEmployee{EmployeeID: employeeId},
		specification.OrderBy{Field: "invoice_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	selected, fallback := SelectWindow(invoices, now)
	stats := ComputeStats(selected, fallback)

	rows := make([]dto.CollectionsInvoiceResponse, 0, len(selected))
	for _, inv := range selected {
		rows = append(rows, dto.CollectionsInvoiceResponse{
			Id:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			ContractId:    inv.ContractID,
			TotalAmount:   inv.TotalAmount,
			PaidAmount:    inv.PaidAmount,
			Remaining:     inv.RemainingAmount(),
			Status:        string(Classify(inv, now)),
			InvoiceDate:   inv.InvoiceDate,
			DueDate:       inv.DueDate,
		})
	}

	if fallback {
		a.logger.Info("COLLECTIONS", "Widened to all unpaid invoices", map[string]interface{}{
			"employeeId": employeeId.String(),
			"period":     now.Format("2006-01"),
			"count":      len(selected),
		})
	}

	return &dto.MonthlyCollectionsResponse{
		EmployeeId:  employeeId,
		Period:      now.Format("2006-01"),
		Stats:       stats,
		Invoices:    rows,
		GeneratedAt: now,
	}, nil
}
