package utils

import (
	"coursehub/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid
func SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail("CourseHub", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("Failed to send email to %s, response code: %d", to, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	return nil
}

// SendEnrollmentEmail confirms a new enrollment
func SendEnrollmentEmail(email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<h2>Welcome aboard, %s!</h2>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start learning.</p>`, name, courseTitle)

	return SendEmail(email, "Enrollment Confirmed — "+courseTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendPaymentReceiptEmail sends the payment receipt after a successful checkout
func SendPaymentReceiptEmail(email, name, courseTitle, receiptNo string, amount float64, currency string) error {
	body := fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>Your payment for <strong>%s</strong> was successful.</p>
		<div class="info-box">
			<p>Receipt No: %s</p>
			<p>Amount: %.2f %s</p>
		</div>`, name, courseTitle, receiptNo, amount, currency)

	return SendEmail(email, "Payment Receipt — "+courseTitle, getEmailTemplate("Payment Receipt", body))
}

// getEmailTemplate wraps body content in the standard HTML shell
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6D9DD7; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">%s</div>
			<div class="footer">CourseHub &middot; This is an automated message, please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
