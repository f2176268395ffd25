package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fleetrent-be/internal/config"
	"fleetrent-be/internal/dto"
	"fleetrent-be/internal/entity"
	"fleetrent-be/internal/repository/specification"
	"fleetrent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	CreatePaymentLink(ctx context.Context, invoiceId uuid.UUID) (*dto.PaymentLinkResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type paymentService struct {
	uowFactory  unitofwork.RepositoryFactory
	collections ICollectionsService
	cfg         config.PaymentConfig
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, collections ICollectionsService, cfg config.PaymentConfig) IPaymentService {
	return &paymentService{
		uowFactory:  uowFactory,
		collections: collections,
		cfg:         cfg,
	}
}

// CreatePaymentLink creates a hosted payment page for the invoice's
// outstanding balance so a customer can settle it online.
func (s *paymentService) CreatePaymentLink(ctx context.Context, invoiceId uuid.UUID) (*dto.PaymentLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: invoiceId})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, errors.New("invoice not found")
	}
	if invoice.PaymentStatus == entity.PaymentStatusPaid {
		return nil, errors.New("invoice is already fully paid")
	}

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: invoice.CustomerID})
	if err != nil {
		return nil, err
	}

	remaining := invoice.RemainingAmount()
	if remaining <= 0 {
		return nil, errors.New("invoice has no outstanding balance")
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.cfg.Production {
		env = midtrans.Production
	}
	sClient.New(s.cfg.MidtransServerKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/invoices?payment=success", frontendURL)

	// One order per payment attempt; the invoice may be settled in
	// several partial payments.
	orderId := fmt.Sprintf("%s-%d", invoice.InvoiceNumber, time.Now().Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(remaining),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    invoice.ID.String(),
				Price: int64(remaining),
				Qty:   1,
				Name:  fmt.Sprintf("Invoice %s balance", invoice.InvoiceNumber),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	if customer != nil {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{
			FName: customer.FullName,
			Email: customer.Email,
			Phone: customer.Phone,
		}
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.PaymentLinkResponse{
		InvoiceId:   invoice.ID,
		OrderId:     orderId,
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
		Amount:      remaining,
	}, nil
}

// HandleNotification records a settled payment reported by the gateway
// on the invoice behind the order and drops the responsible employee's
// cached collections report so the next poll reflects it.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.cfg.MidtransServerKey == "" {
		return errors.New("payment gateway is not configured")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.MidtransServerKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		return errors.New("invalid signature")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		// fall through and record the payment
	default:
		// pending keeps waiting; deny/cancel/expire leave the invoice untouched
		return nil
	}

	amount, err := strconv.ParseFloat(req.GrossAmount, 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid gross_amount %q", req.GrossAmount)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByInvoiceNumber{Number: invoiceNumberFromOrder(req.OrderId)})
	if err != nil {
		return err
	}
	if invoice == nil {
		return fmt.Errorf("no invoice for order %s", req.OrderId)
	}
	// Gateways retry notifications; a settled invoice has nothing left to record
	if invoice.PaymentStatus == entity.PaymentStatusPaid {
		return nil
	}

	invoice.RecordPayment(amount)
	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return err
	}

	contract, err := uow.ContractRepository().FindOne(ctx, specification.ByID{ID: invoice.ContractID})
	if err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if contract != nil {
		s.collections.InvalidateFor(contract.EmployeeID)
	}
	return nil
}

// invoiceNumberFromOrder strips the per-attempt suffix CreatePaymentLink
// appends to the invoice number.
func invoiceNumberFromOrder(orderId string) string {
	if i := strings.LastIndex(orderId, "-"); i > 0 {
		return orderId[:i]
	}
	return orderId
}
