package dto

import "github.com/google/uuid"

// PaymentLinkResponse carries a hosted payment page for an invoice balance
type PaymentLinkResponse struct {
	InvoiceId   uuid.UUID `json:"invoice_id"`
	OrderId     string    `json:"order_id"`
	RedirectURL string    `json:"redirect_url"`
	Token       string    `json:"token"`
	Amount      float64   `json:"amount"`
}

// MidtransWebhookRequest is the gateway's payment notification callback
type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}
