package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/config"
)

const depositApprovedTemplate = `
<p>Hi {{.Name}},</p>
<p>Your deposit request of <strong>Rs. {{printf "%.2f" .Amount}}</strong> has been approved
and the amount has been credited to your wallet.</p>
<p>— Skiller Marketplace</p>
`

// Mailer sends transactional notification emails over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	tmpl   *template.Template
}

// New creates a mailer from SMTP configuration
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		tmpl:   template.Must(template.New("deposit_approved").Parse(depositApprovedTemplate)),
	}
}

// SendDepositApproved sends the deposit-approval notification. Callers treat
// failures as best-effort; a send error never rolls back the approval.
func (m *Mailer) SendDepositApproved(_ context.Context, to, name string, amount float64) error {
	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, struct {
		Name   string
		Amount float64
	}{Name: name, Amount: amount}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your deposit has been approved")
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
