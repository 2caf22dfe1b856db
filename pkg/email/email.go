package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	TruckName    string
}

// EmailService sends customer-facing order emails. All sends are best-effort:
// callers fire them after the order is persisted and only log failures.
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// OrderEmailData carries the fields rendered into order emails
type OrderEmailData struct {
	TruckName    string
	CustomerName string
	OrderNumber  int
	Items        []string
	Total        string
}

// SendOrderConfirmation sends the post-checkout confirmation email
func (s *EmailService) SendOrderConfirmation(toEmail string, data OrderEmailData) error {
	data.TruckName = s.config.TruckName

	htmlContent, err := renderTemplate(orderConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation template: %w", err)
	}

	subject := fmt.Sprintf("Order #%d confirmed - %s", data.OrderNumber, s.config.TruckName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// SendOrderReady sends the "your order is ready" notification
func (s *EmailService) SendOrderReady(toEmail string, data OrderEmailData) error {
	data.TruckName = s.config.TruckName

	htmlContent, err := renderTemplate(orderReadyTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render ready template: %w", err)
	}

	subject := fmt.Sprintf("Order #%d is ready! - %s", data.OrderNumber, s.config.TruckName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func renderTemplate(tmplText string, data OrderEmailData) (string, error) {
	tmpl, err := template.New("order_email").Parse(tmplText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// orderConfirmationTemplate is the HTML template for checkout confirmations
const orderConfirmationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Order Confirmed</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #fff8f0;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background: linear-gradient(135deg, #f6993f 0%, #e3342f 100%); padding: 32px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.TruckName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 20px 0; font-size: 24px;">Thanks, {{.CustomerName}}!</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Your order is in. Listen for your number at the window:
                            </p>
                            <p style="color: #e3342f; font-size: 40px; font-weight: 700; text-align: center; margin: 0 0 30px 0;">
                                #{{.OrderNumber}}
                            </p>
                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin: 0 0 20px 0;">
                                {{range .Items}}
                                <tr>
                                    <td style="color: #4a5568; font-size: 15px; padding: 6px 0; border-bottom: 1px solid #edf2f7;">{{.}}</td>
                                </tr>
                                {{end}}
                            </table>
                            <p style="color: #1a1a2e; font-size: 16px; font-weight: 600; margin: 0;">
                                Total: {{.Total}}
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">
                                Sent by {{.TruckName}}. See you at the truck!
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

// orderReadyTemplate is the HTML template for ready notifications
const orderReadyTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Order Ready</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #fff8f0;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background: linear-gradient(135deg, #38c172 0%, #1f9d55 100%); padding: 32px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.TruckName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px; text-align: center;">
                            <h2 style="color: #1a1a2e; margin: 0 0 16px 0; font-size: 24px;">Order #{{.OrderNumber}} is ready!</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0;">
                                {{.CustomerName}}, come grab your food at the window while it's hot.
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">
                                Sent by {{.TruckName}}
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
