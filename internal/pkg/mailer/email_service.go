package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReturnRejected(toEmail, contractNumber, reason string) error
	SendContractCancelled(toEmail, contractNumber string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendReturnRejected(toEmail, contractNumber, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Vehicle Return Rejected — Contract %s", contractNumber))

	returnLink := fmt.Sprintf("%s/contracts/%s/cancellation", s.frontendURL, contractNumber)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Vehicle Return Rejected</h2>
			<p>The vehicle return for contract <b>%s</b> was rejected by the reviewing manager.</p>
			<p style="background: #FFF3F3; border-left: 4px solid #D9534F; padding: 10px;">%s</p>
			<p>Please submit a new return with the requested corrections:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Resubmit Return</a>
		</div>
	`, contractNumber, reason, returnLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send rejection notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Rejection notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendContractCancelled(toEmail, contractNumber string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Contract %s Cancelled", contractNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Contract Cancelled</h2>
			<p>Contract <b>%s</b> has been cancelled after the vehicle return was approved.</p>
			<p>Any outstanding invoices remain payable. Contact your branch for final settlement details.</p>
		</div>
	`, contractNumber)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cancellation notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Cancellation notice sent to %s\n", toEmail)
	return nil
}
