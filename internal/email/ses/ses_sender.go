package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendRunCompleted(ctx context.Context, toEmail, toName string, run *domain.ParseRun, stats *domain.RunStats) error {
	subject := fmt.Sprintf("ShipMatrix: %s processed", run.FileName)
	htmlBody := buildCompletedHTML(toName, run, stats)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour upload %s finished processing.\n\nInvoices: %d\nShipments: %d\nIdentity corrected: %d\nTotal billed: $%.2f\n\nShipMatrix Team",
		toName, run.FileName, stats.TotalInvoices, stats.TotalShipments,
		stats.IdentityCorrected, stats.TotalBilled)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendRunFailed(ctx context.Context, toEmail, toName string, run *domain.ParseRun) error {
	subject := fmt.Sprintf("ShipMatrix: %s failed", run.FileName)
	htmlBody := buildFailedHTML(toName, run)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour upload %s failed to process.\n\nReason: %s\n\nShipMatrix Team",
		toName, run.FileName, run.Error)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildCompletedHTML(name string, run *domain.ParseRun, stats *domain.RunStats) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your invoice file has been processed</h2>
  <p>Hi %s,</p>
  <p><strong>%s</strong> finished processing.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Invoices</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Shipments</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Identity corrected</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Total billed</td><td>$%.2f</td></tr>
  </table>
  <p>Sign in to download the workbook.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ShipMatrix - Carrier Invoice Extraction</p>
</body>
</html>`, name, run.FileName, stats.TotalInvoices, stats.TotalShipments,
		stats.IdentityCorrected, stats.TotalBilled)
}

func buildFailedHTML(name string, run *domain.ParseRun) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Processing failed</h2>
  <p>Hi %s,</p>
  <p><strong>%s</strong> could not be processed.</p>
  <p style="color: #B91C1C;">%s</p>
  <p>You can retry the upload or contact support if the problem persists.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ShipMatrix - Carrier Invoice Extraction</p>
</body>
</html>`, name, run.FileName, run.Error)
}
