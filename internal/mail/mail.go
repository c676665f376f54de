package mail

import (
	"fmt"
	"log"
	"strings"

	"github.com/cityroots/storefront-backend/internal/order"
)

// Mailer sends transactional email.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer is the fallback when SMTP is unconfigured: it logs the message
// instead of sending it.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail (dry run) to=%s subject=%q\n%s", to, subject, body)
	return nil
}

// OrderConfirmationSubject builds the subject line for an order confirmation.
func OrderConfirmationSubject(ord order.Order) string {
	return fmt.Sprintf("City Roots order %s confirmed", ord.OrderNumber)
}

// OrderConfirmationBody assembles the plain-text order summary.
func OrderConfirmationBody(ord order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", ord.CustomerName)
	fmt.Fprintf(&b, "Thanks for shopping with City Roots. Your order %s is confirmed.\n\n", ord.OrderNumber)

	b.WriteString("Items:\n")
	for _, it := range ord.Items {
		fmt.Fprintf(&b, "  %d x %s - Rs. %.2f\n", it.Quantity, it.Name, it.Price*float64(it.Quantity))
	}

	fmt.Fprintf(&b, "\nSubtotal: Rs. %.2f\n", ord.Subtotal)
	fmt.Fprintf(&b, "Tax (GST): Rs. %.2f\n", ord.Tax)
	if ord.Shipping == 0 {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: Rs. %.2f\n", ord.Shipping)
	}
	fmt.Fprintf(&b, "Total: Rs. %.2f\n\n", ord.GrandTotal)

	fmt.Fprintf(&b, "Delivery address:\n%s\n\n", ord.ShippingAddress)
	fmt.Fprintf(&b, "Track your order: https://cityroots.in/track/%s\n", ord.OrderNumber)
	b.WriteString("\nHappy growing,\nThe City Roots team\n")
	return b.String()
}
