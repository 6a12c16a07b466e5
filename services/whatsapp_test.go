package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/jdjewellers/storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func testOrder() *models.Order {
	return &models.Order{
		CustomerName:    "Priya Sharma",
		CustomerPhone:   "9876543210",
		CustomerEmail:   "priya@example.com",
		CustomerAddress: "12 MG Road, Bengaluru",
		TotalAmount:     2000,
		Items: []models.OrderItem{
			{Name: "Gold Necklace", Price: 1500, Quantity: 1},
			{Name: "Silver Ring", Price: 250, Quantity: 2},
		},
	}
}

func TestBuildMessageContainsOrderDetails(t *testing.T) {
	n := NewWhatsAppNotifier("919079998370")
	msg := n.BuildMessage(testOrder())

	assert.Contains(t, msg, "Name: Priya Sharma")
	assert.Contains(t, msg, "Phone: 9876543210")
	assert.Contains(t, msg, "Email: priya@example.com")
	assert.Contains(t, msg, "Address: 12 MG Road, Bengaluru")
	assert.Contains(t, msg, "Gold Necklace (Qty: 1) - ₹1500")
	assert.Contains(t, msg, "Silver Ring (Qty: 2) - ₹250")
	assert.Contains(t, msg, "*Total Amount:* ₹2000")
}

func TestBuildMessageMissingEmail(t *testing.T) {
	n := NewWhatsAppNotifier("919079998370")
	order := testOrder()
	order.CustomerEmail = ""

	assert.Contains(t, n.BuildMessage(order), "Email: Not provided")
}

func TestDeepLinkTargetsConfiguredNumber(t *testing.T) {
	n := NewWhatsAppNotifier("919079998370")
	link := n.DeepLink(testOrder())

	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=919079998370&text="))

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	text := parsed.Query().Get("text")
	// Decoding the link yields the original message intact.
	assert.Contains(t, text, "NEW ORDER FROM JD JEWELLERS")
	assert.Contains(t, text, "Priya Sharma")
}
