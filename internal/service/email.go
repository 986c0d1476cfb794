package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

func (s *emailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, ownerName, borrowerName, itemTitle string) error {
	subject := fmt.Sprintf("New Rental Request: %s", itemTitle)
	plainText := fmt.Sprintf("%s wants to borrow your %s", borrowerName, itemTitle)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>New Rental Request</h2>
				<p><strong>%s</strong> has requested to borrow your <strong>%s</strong>.</p>
				<p>Open the app to confirm or decline the request.</p>
			</body>
		</html>
	`, borrowerName, itemTitle)

	return s.send(ownerEmail, ownerName, subject, plainText, htmlContent)
}

func (s *emailService) SendRentalDecisionNotification(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, confirmed bool) error {
	decision := "declined"
	if confirmed {
		decision = "confirmed"
	}
	subject := fmt.Sprintf("Rental Request %s: %s", decision, itemTitle)
	plainText := fmt.Sprintf("Your request to borrow %s was %s", itemTitle, decision)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Request Update</h2>
				<p>Your request to borrow <strong>%s</strong> was <strong>%s</strong>.</p>
			</body>
		</html>
	`, itemTitle, decision)

	return s.send(borrowerEmail, borrowerName, subject, plainText, htmlContent)
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, borrowerEmail, borrowerName, itemTitle string, amountCents int64) error {
	subject := fmt.Sprintf("Payment Receipt: %s", itemTitle)
	plainText := fmt.Sprintf("Your payment of $%.2f for %s was processed", float64(amountCents)/100, itemTitle)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Payment Receipt</h2>
				<p>Your payment of <strong>$%.2f</strong> for <strong>%s</strong> was processed.</p>
			</body>
		</html>
	`, float64(amountCents)/100, itemTitle)

	return s.send(borrowerEmail, borrowerName, subject, plainText, htmlContent)
}

func (s *emailService) SendPendingRequestDigest(ctx context.Context, ownerEmail, ownerName string, pendingCount int) error {
	subject := "You have pending rental requests"
	plainText := fmt.Sprintf("You have %d rental request(s) waiting for a decision", pendingCount)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Pending Rental Requests</h2>
				<p>You have <strong>%d</strong> rental request(s) waiting for a decision.</p>
			</body>
		</html>
	`, pendingCount)

	return s.send(ownerEmail, ownerName, subject, plainText, htmlContent)
}
