package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"swadwala/internal/config"
	"swadwala/internal/domain/model"
)

const fromName = "SwadWala"

var otpTmpl = template.Must(template.New("otp").Parse(`
<h2>Your OTP</h2>
<h1>{{.OTP}}</h1>
<p>Valid for 5 minutes</p>
`))

var orderTmpl = template.Must(template.New("order").Parse(`
<h2>Order Confirmation</h2>
<p>Thank you for your order. Order ID: <strong>{{.ID}}</strong></p>
<p>Total: <strong>₹{{.TotalAmount}}</strong></p>
<h3>Delivery Address</h3>
<p>{{if .DeliveryAddress.Text}}{{.DeliveryAddress.Text}}{{else}}-{{end}}</p>
{{range .ShopOrders}}
<h4>Shop: {{if .Shop}}{{.Shop.Name}}{{else}}#{{.ShopID}}{{end}} - Subtotal: ₹{{.Subtotal}}</h4>
<ul>
{{range .Items}}<li>{{if .Item}}{{.Item.Name}}{{else}}#{{.ItemID}}{{end}} - ₹{{.PriceSnapshot}} × {{.Quantity}}</li>
{{end}}</ul>
{{end}}
<p>We will notify you when your order is out for delivery.</p>
`))

// Mailer sends transactional mail over plain SMTP.
type Mailer struct {
	cfg config.Config
}

func New(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendOTPMail(to string, otp string) error {
	var body bytes.Buffer
	if err := otpTmpl.Execute(&body, struct{ OTP string }{otp}); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}
	return m.send(to, fromName+" Password Reset OTP", body.String())
}

func (m *Mailer) SendOrderConfirmation(to string, order model.Order) error {
	var body bytes.Buffer
	if err := orderTmpl.Execute(&body, order); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}
	return m.send(to, fmt.Sprintf("Order Confirmation - %d", order.ID), body.String())
}

func (m *Mailer) send(to string, subject string, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		fromName, m.cfg.EmailUser, to, subject, htmlBody,
	)

	auth := smtp.PlainAuth("", m.cfg.EmailUser, m.cfg.EmailPass, m.cfg.SMTPHost)

	if err := smtp.SendMail(m.cfg.SMTPAddr, auth, m.cfg.EmailUser, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
