package collections

import (
	"testing"
	"time"

	"fleetrent-be/internal/entity"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestClassify(t *testing.T) {
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	tests := []struct {
		name    string
		invoice entity.Invoice
		want    InvoiceClass
	}{
		{
			name:    "paid status wins outright",
			invoice: entity.Invoice{PaymentStatus: entity.PaymentStatusPaid, TotalAmount: 100, PaidAmount: 100, InvoiceDate: past},
			want:    ClassPaid,
		},
		{
			name:    "partial payment beats overdue",
			invoice: entity.Invoice{PaymentStatus: entity.PaymentStatusPartiallyPaid, TotalAmount: 100, PaidAmount: 40, InvoiceDate: past},
			want:    ClassPartiallyPaid,
		},
		{
			name:    "past due date with no payment",
			invoice: entity.Invoice{PaymentStatus: entity.PaymentStatusUnpaid, TotalAmount: 100, InvoiceDate: future, DueDate: datePtr(past)},
			want:    ClassOverdue,
		},
		{
			name:    "falls back to invoice date when no due date",
			invoice: entity.Invoice{PaymentStatus: entity.PaymentStatusUnpaid, TotalAmount: 100, InvoiceDate: past},
			want:    ClassOverdue,
		},
		{
			name:    "not yet due",
			invoice: entity.Invoice{PaymentStatus: entity.PaymentStatusUnpaid, TotalAmount: 100, InvoiceDate: future},
			want:    ClassUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.invoice, now); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectWindowCurrentMonth(t *testing.T) {
	thisMonth := &entity.Invoice{InvoiceDate: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), PaymentStatus: entity.PaymentStatusUnpaid}
	lastMonth := &entity.Invoice{InvoiceDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), PaymentStatus: entity.PaymentStatusUnpaid}

	selected, fallback := SelectWindow([]*entity.Invoice{thisMonth, lastMonth}, now)
	if fallback {
		t.Error("fallback must not apply when the month has invoices")
	}
	if len(selected) != 1 || selected[0] != thisMonth {
		t.Errorf("selected = %d invoices, want only the current month's", len(selected))
	}
}

func TestSelectWindowFallback(t *testing.T) {
	paidOld := &entity.Invoice{InvoiceDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), PaymentStatus: entity.PaymentStatusPaid}
	unpaidOld := &entity.Invoice{InvoiceDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), PaymentStatus: entity.PaymentStatusUnpaid}
	partialOld := &entity.Invoice{InvoiceDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), PaymentStatus: entity.PaymentStatusPartiallyPaid}

	selected, fallback := SelectWindow([]*entity.Invoice{paidOld, unpaidOld, partialOld}, now)
	if !fallback {
		t.Fatal("fallback must apply when no invoice falls in the current month")
	}
	if len(selected) != 2 {
		t.Errorf("selected = %d invoices, want the 2 not fully paid", len(selected))
	}
	for _, inv := range selected {
		if inv.PaymentStatus == entity.PaymentStatusPaid {
			t.Error("fallback window must exclude fully paid invoices")
		}
	}
}

func TestSelectWindowEmpty(t *testing.T) {
	selected, fallback := SelectWindow(nil, now)
	if !fallback {
		t.Error("empty input widens (to an empty set)")
	}
	if len(selected) != 0 {
		t.Errorf("selected = %d invoices, want 0", len(selected))
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name          string
		invoices      []*entity.Invoice
		wantDue       float64
		wantCollected float64
		wantPending   float64
		wantRate      int
	}{
		{
			name: "mixed payments",
			invoices: []*entity.Invoice{
				{TotalAmount: 1000, PaidAmount: 1000},
				{TotalAmount: 500, PaidAmount: 200},
				{TotalAmount: 500, PaidAmount: 0},
			},
			wantDue:       2000,
			wantCollected: 1200,
			wantPending:   800,
			wantRate:      60,
		},
		{
			name:     "no invoices means zero rate, not NaN",
			invoices: nil,
			wantRate: 0,
		},
		{
			name: "rate rounds to nearest whole percent",
			invoices: []*entity.Invoice{
				{TotalAmount: 300, PaidAmount: 100},
			},
			wantDue:       300,
			wantCollected: 100,
			wantPending:   200,
			wantRate:      33,
		},
		{
			name: "overpayment clamps rate to 100",
			invoices: []*entity.Invoice{
				{TotalAmount: 100, PaidAmount: 120},
			},
			wantDue:       100,
			wantCollected: 120,
			wantPending:   -20,
			wantRate:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.invoices, false)
			if stats.TotalDue != tt.wantDue {
				t.Errorf("TotalDue = %v, want %v", stats.TotalDue, tt.wantDue)
			}
			if stats.TotalCollected != tt.wantCollected {
				t.Errorf("TotalCollected = %v, want %v", stats.TotalCollected, tt.wantCollected)
			}
			if stats.TotalPending != tt.wantPending {
				t.Errorf("TotalPending = %v, want %v", stats.TotalPending, tt.wantPending)
			}
			if stats.CollectionRate != tt.wantRate {
				t.Errorf("CollectionRate = %v, want %v", stats.CollectionRate, tt.wantRate)
			}
		})
	}
}
