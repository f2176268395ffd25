package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"fleetrent-be/internal/config"
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/contract"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// --- fakes ---

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice // keyed by invoice number
	updates  int
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	r.invoices[inv.InvoiceNumber] = inv
	return nil
}

func (r *fakeInvoiceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	for _, s := range specs {
		if byNumber, ok := s.(specification.ByInvoiceNumber); ok {
			return r.invoices[byNumber.Number], nil
		}
		if byID, ok := s.(specification.ByID); ok {
			for _, inv := range r.invoices {
				if inv.ID == byID.ID {
					return inv, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	r.updates++
	r.invoices[inv.InvoiceNumber] = inv
	return nil
}

type fakeContractLookup struct {
	contracts map[uuid.UUID]*entity.Contract
}

func (r *fakeContractLookup) Create(ctx context.Context, c *entity.Contract) error { return nil }
func (r *fakeContractLookup) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return r.contracts[byID.ID], nil
		}
	}
	return nil, nil
}
func (r *fakeContractLookup) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contract, error) {
	return nil, nil
}
func (r *fakeContractLookup) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error) {
	return r.FindOne(ctx, specs...)
}
func (r *fakeContractLookup) Update(ctx context.Context, c *entity.Contract) error { return nil }
func (r *fakeContractLookup) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContractStatus, reason string) error {
	return nil
}
func (r *fakeContractLookup) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakePaymentUow struct {
	invoices  *fakeInvoiceRepo
	contracts *fakeContractLookup

	committed, rolledBack int
}

func (u *fakePaymentUow) Begin(ctx context.Context) error { return nil }
func (u *fakePaymentUow) Commit() error                   { u.committed++; return nil }
func (u *fakePaymentUow) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakePaymentUow) UserRepository() contract.UserRepository                   { return nil }
func (u *fakePaymentUow) CustomerRepository() contract.CustomerRepository           { return nil }
func (u *fakePaymentUow) VehicleRepository() contract.VehicleRepository             { return nil }
func (u *fakePaymentUow) ContractRepository() contract.ContractRepository           { return u.contracts }
func (u *fakePaymentUow) VehicleReturnRepository() contract.VehicleReturnRepository { return nil }
func (u *fakePaymentUow) InvoiceRepository() contract.InvoiceRepository             { return u.invoices }
func (u *fakePaymentUow) AuditLogRepository() contract.AuditLogRepository           { return nil }

type fakePaymentUowFactory struct {
	uow *fakePaymentUow
}

func (f *fakePaymentUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type spyCollections struct {
	invalidated []uuid.UUID
}

func (s *spyCollections) Monthly(ctx context.Context, employeeId uuid.UUID) (*dto.MonthlyCollectionsResponse, error) {
	return nil, nil
}
func (s *spyCollections) InvalidateFor(employeeId uuid.UUID) {
	s.invalidated = append(s.invalidated, employeeId)
}

const testServerKey = "SB-Mid-server-test"

func signWebhook(req *dto.MidtransWebhookRequest) {
	input := req.OrderId + req.StatusCode + req.GrossAmount + testServerKey
	req.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
}

func newWebhookFixture() (IPaymentService, *fakePaymentUow, *spyCollections, *entity.Contract) {
	employeeId := uuid.New()
	c := &entity.Contract{
		ID:         uuid.New(),
		EmployeeID: employeeId,
		Status:     entity.ContractStatusActive,
	}
	inv := &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2026-0001",
		ContractID:    c.ID,
		TotalAmount:   5400,
		PaidAmount:    1800,
		PaymentStatus: entity.PaymentStatusPartiallyPaid,
	}

	uow := &fakePaymentUow{
		invoices:  &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{inv.InvoiceNumber: inv}},
		contracts: &fakeContractLookup{contracts: map[uuid.UUID]*entity.Contract{c.ID: c}},
	}
	collections := &spyCollections{}
	svc := NewPaymentService(&fakePaymentUowFactory{uow: uow}, collections, config.PaymentConfig{
		MidtransServerKey: testServerKey,
	})
	return svc, uow, collections, c
}

// --- tests ---

func TestHandleNotificationSettlesInvoice(t *testing.T) {
	svc, uow, collections, c := newWebhookFixture()

	req := &dto.MidtransWebhookRequest{
		TransactionStatus: "settlement",
		OrderId:           "INV-2026-0001-1724932800",
		StatusCode:        "200",
		GrossAmount:       "3600.00",
	}
	signWebhook(req)

	if err := svc.HandleNotification(context.Background(), req); err != nil {
		t.Fatalf("HandleNotification() error = %v", err)
	}

	inv := uow.invoices.invoices["INV-2026-0001"]
	if inv.PaidAmount != 5400 {
		t.Errorf("paid amount = %v, want 5400", inv.PaidAmount)
	}
	if inv.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("payment status = %q, want paid", inv.PaymentStatus)
	}
	if uow.committed != 1 {
		t.Errorf("commits = %d, want 1", uow.committed)
	}
	if len(collections.invalidated) != 1 || collections.invalidated[0] != c.EmployeeID {
		t.Errorf("invalidated = %v, want the contract's employee", collections.invalidated)
	}
}

func TestHandleNotificationPartialPayment(t *testing.T) {
	svc, uow, _, _ := newWebhookFixture()

	req := &dto.MidtransWebhookRequest{
		TransactionStatus: "capture",
		OrderId:           "INV-2026-0001-1724932800",
		StatusCode:        "200",
		GrossAmount:       "600",
	}
	signWebhook(req)

	if err := svc.HandleNotification(context.Background(), req); err != nil {
		t.Fatalf("HandleNotification() error = %v", err)
	}

	inv := uow.invoices.invoices["INV-2026-0001"]
	if inv.PaidAmount != 2400 {
		t.Errorf("paid amount = %v, want 2400", inv.PaidAmount)
	}
	if inv.PaymentStatus != entity.PaymentStatusPartiallyPaid {
		t.Errorf("payment status = %q, want partially_paid", inv.PaymentStatus)
	}
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	svc, uow, collections, _ := newWebhookFixture()

	req := &dto.MidtransWebhookRequest{
		TransactionStatus: "settlement",
		OrderId:           "INV-2026-0001-1724932800",
		StatusCode:        "200",
		GrossAmount:       "3600.00",
		SignatureKey:      "forged",
	}

	if err := svc.HandleNotification(context.Background(), req); err == nil {
		t.Fatal("HandleNotification() with bad signature must fail")
	}
	if uow.invoices.updates != 0 {
		t.Error("invoice must not be touched on signature mismatch")
	}
	if len(collections.invalidated) != 0 {
		t.Error("cache must not be invalidated on signature mismatch")
	}
}

func TestHandleNotificationIgnoresNonSettlementStatuses(t *testing.T) {
	for _, status := range []string{"pending", "deny", "cancel", "expire"} {
		t.Run(status, func(t *testing.T) {
			svc, uow, collections, _ := newWebhookFixture()

			req := &dto.MidtransWebhookRequest{
				TransactionStatus: status,
				OrderId:           "INV-2026-0001-1724932800",
				StatusCode:        "201",
				GrossAmount:       "3600.00",
			}
			signWebhook(req)

			if err := svc.HandleNotification(context.Background(), req); err != nil {
				t.Fatalf("HandleNotification() error = %v", err)
			}
			if uow.invoices.updates != 0 {
				t.Errorf("invoice updates = %d, want 0 for %s", uow.invoices.updates, status)
			}
			if len(collections.invalidated) != 0 {
				t.Error("cache must stay put when nothing settles")
			}
		})
	}
}

func TestHandleNotificationRetryAfterFullSettlement(t *testing.T) {
	svc, uow, collections, _ := newWebhookFixture()
	uow.invoices.invoices["INV-2026-0001"].PaidAmount = 5400
	uow.invoices.invoices["INV-2026-0001"].PaymentStatus = entity.PaymentStatusPaid

	req := &dto.MidtransWebhookRequest{
		TransactionStatus: "settlement",
		OrderId:           "INV-2026-0001-1724932800",
		StatusCode:        "200",
		GrossAmount:       "3600.00",
	}
	signWebhook(req)

	if err := svc.HandleNotification(context.Background(), req); err != nil {
		t.Fatalf("retried notification must be acknowledged, got %v", err)
	}
	if uow.invoices.updates != 0 {
		t.Error("settled invoice must not be written again")
	}
	if len(collections.invalidated) != 0 {
		t.Error("retried notification must not invalidate the cache")
	}
}

func TestInvoiceNumberFromOrder(t *testing.T) {
	tests := []struct {
		orderId string
		want    string
	}{
		{orderId: "INV-2026-0001-1724932800", want: "INV-2026-0001"},
		{orderId: "INVDEMO0001-1724932800", want: "INVDEMO0001"},
		{orderId: "plain", want: "plain"},
	}
	for _, tt := range tests {
		if got := invoiceNumberFromOrder(tt.orderId); got != tt.want {
			t.Errorf("invoiceNumberFromOrder(%q) = %q, want %q", tt.orderId, got, tt.want)
		}
	}
}
