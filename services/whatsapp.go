package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jdjewellers/storefront-backend/models"
)

// WhatsAppNotifier composes the human-readable order message and the
// deep link that opens WhatsApp pre-filled with it, addressed to the
// store's fixed contact number.
type WhatsAppNotifier struct {
	number string
	loc    *time.Location
}

func NewWhatsAppNotifier(number string) *WhatsAppNotifier {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	return &WhatsAppNotifier{number: number, loc: loc}
}

// BuildMessage formats the order into the store's WhatsApp template.
func (n *WhatsAppNotifier) BuildMessage(order *models.Order) string {
	var items []string
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("%s (Qty: %d) - ₹%g", item.Name, item.Quantity, item.Price))
	}

	email := order.CustomerEmail
	if email == "" {
		email = "Not provided"
	}

	return fmt.Sprintf(`🛍️ *NEW ORDER FROM JD JEWELLERS*

👤 *Customer Details:*
Name: %s
Phone: %s
Email: %s
Address: %s

💎 *Order Items:*
%s

💰 *Total Amount:* ₹%g

📅 *Order Time:* %s`,
		order.CustomerName,
		order.CustomerPhone,
		email,
		order.CustomerAddress,
		strings.Join(items, "\n"),
		order.TotalAmount,
		time.Now().In(n.loc).Format("02/01/2006, 3:04:05 pm"),
	)
}

// DeepLink URL-encodes the message into a WhatsApp send link.
func (n *WhatsAppNotifier) DeepLink(order *models.Order) string {
	encoded := url.QueryEscape(n.BuildMessage(order))
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", n.number, encoded)
}
