package httpserver

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/intechds/storefront/internal/domain"
)

// OrderNotifier mails the sales inbox when an order arrives. Best-effort:
// callers run it in a goroutine and failures are only logged.
type OrderNotifier struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

func (n *OrderNotifier) configured() bool {
	return n.Host != "" && n.User != "" && n.Pass != "" && n.To != ""
}

func (n *OrderNotifier) OrderCreated(o *domain.Order) {
	if !n.configured() {
		log.Warn().Msg("SMTP not configured, skipping order notification")
		return
	}
	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Subject: New order %s\r\n", o.ID)
	_, _ = fmt.Fprintf(&buf, "From: %s\r\n", n.User)
	_, _ = fmt.Fprintf(&buf, "To: %s\r\n", n.To)
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	_, _ = fmt.Fprintf(&buf, "Order: %s\n", o.ID)
	_, _ = fmt.Fprintf(&buf, "Customer: %s <%s> %s\n", o.Customer.Name, o.Customer.Email, o.Customer.Phone)
	if o.Customer.Company != "" {
		_, _ = fmt.Fprintf(&buf, "Company: %s\n", o.Customer.Company)
	}
	_, _ = fmt.Fprintf(&buf, "Address: %s\n", o.Customer.Address)
	buf.WriteString("Items:\n")
	for _, it := range o.Items {
		_, _ = fmt.Fprintf(&buf, "- %s x%d ฿%.2f\n", it.ProductName, it.Quantity, it.Price)
	}
	_, _ = fmt.Fprintf(&buf, "Total: ฿%.2f (shipping: ฿%.2f)\n", o.Total, o.ShippingCost)
	_, _ = fmt.Fprintf(&buf, "Payment: %s\n", o.PaymentMethod)

	auth := smtp.PlainAuth("", n.User, n.Pass, n.Host)
	if err := smtp.SendMail(n.Host+":"+n.Port, auth, n.User, []string{n.To}, buf.Bytes()); err != nil {
		log.Error().Err(err).Str("order", o.ID).Msg("order email send")
	}
}
