package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// Service handles email sending
type Service struct {
	config Config
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// SendPasswordResetEmail sends a password reset email
func (s *Service) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := render(passwordResetTemplate, map[string]any{
		"Email":    toEmail,
		"ResetURL": resetURL,
		"AppName":  "UdyogBooks",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Reset Your Password - UdyogBooks", htmlContent)
	return s.sendEmail(toEmail, message)
}

// QuotationLine is one goods row rendered into a quotation email.
type QuotationLine struct {
	SrNo        int
	Description string
	HSNSACCode  string
	Quantity    float64
	Price       float64
	Amount      float64
}

// QuotationEmail is the data rendered into the quotation email body.
type QuotationEmail struct {
	Reference  string
	Date       string
	ClientName string
	Lines      []QuotationLine
	SubTotal   float64
	GSTAmount  float64
	GrandTotal float64
	Currency   string
}

// SendQuotationEmail mails a quotation summary to a client.
func (s *Service) SendQuotationEmail(toEmail string, data QuotationEmail) error {
	htmlContent, err := render(quotationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Quotation %s - UdyogBooks", data.Reference)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *Service) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *Service) buildHTMLEmail(to, subject, htmlBody string) []byte {
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

func render(tmplText string, data any) (string, error) {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reset Your Password</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
        <tr>
            <td style="background: #1a1a2e; padding: 32px 30px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.AppName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 40px 30px;">
                <h2 style="color: #1a1a2e; margin: 0 0 20px 0;">Reset Your Password</h2>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    We received a request to reset the password for the account associated with <strong>{{.Email}}</strong>.
                </p>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    Click the button below to reset your password. This link will expire in <strong>1 hour</strong>.
                </p>
                <table role="presentation" style="margin: 24px auto;">
                    <tr>
                        <td style="background: #1a1a2e; border-radius: 8px;">
                            <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px;">Reset Password</a>
                        </td>
                    </tr>
                </table>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    If you didn't request this password reset, you can safely ignore this email.
                </p>
            </td>
        </tr>
    </table>
</body>
</html>
`

const quotationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Quotation {{.Reference}}</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 640px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
        <tr>
            <td style="padding: 32px 30px;">
                <h2 style="color: #1a1a2e; margin: 0 0 8px 0;">Quotation {{.Reference}}</h2>
                <p style="color: #4a5568; margin: 0 0 24px 0;">Date: {{.Date}} &middot; For: {{.ClientName}}</p>
                <table style="width: 100%; border-collapse: collapse; font-size: 14px;">
                    <tr style="background: #f8fafc; color: #1a1a2e; text-align: left;">
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">#</th>
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">Description</th>
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">HSN/SAC</th>
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">Qty</th>
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">Price</th>
                        <th style="padding: 8px; border: 1px solid #e2e8f0;">Amount</th>
                    </tr>
                    {{range .Lines}}
                    <tr>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.SrNo}}</td>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.Description}}</td>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.HSNSACCode}}</td>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.Quantity}}</td>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.Price}}</td>
                        <td style="padding: 8px; border: 1px solid #e2e8f0;">{{.Amount}}</td>
                    </tr>
                    {{end}}
                </table>
                <p style="color: #1a1a2e; font-size: 15px; margin: 24px 0 0 0; text-align: right;">
                    Subtotal: {{.Currency}}{{.SubTotal}}<br>
                    GST: {{.Currency}}{{.GSTAmount}}<br>
                    <strong>Grand Total: {{.Currency}}{{.GrandTotal}}</strong>
                </p>
            </td>
        </tr>
    </table>
</body>
</html>
`
