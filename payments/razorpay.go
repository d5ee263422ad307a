package payments

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"webepex/models"
)

// RazorpayGateway creates orders through the official Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrNotConfigured
	}
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (*models.Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	order := &models.Order{
		ID:       stringField(body, "id"),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}

	// Trust the gateway's echo of the amount when present.
	if v, ok := body["amount"].(float64); ok {
		order.Amount = int64(v)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned an order without an id")
	}

	return order, nil
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}
