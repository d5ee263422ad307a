package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"webepex/payments"
)

// minOrderAmount is one full currency unit in the minor unit (100 paise = ₹1).
const minOrderAmount = 100

type PaymentHandler struct {
	gateway  payments.Gateway
	verifier *payments.SignatureVerifier
	log      zerolog.Logger
}

// NewPaymentHandler wires the payment endpoints. gateway may be nil when
// credentials were absent at boot; order creation then reports the
// configuration error at first use.
func NewPaymentHandler(gateway payments.Gateway, verifier *payments.SignatureVerifier, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, verifier: verifier, log: log}
}

type createOrderInput struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.Amount < minOrderAmount {
		fail(c, http.StatusBadRequest, "Invalid amount. Minimum amount is ₹1 (100 paise)")
		return
	}

	if input.Currency == "" {
		input.Currency = "INR"
	}

	if h.gateway == nil {
		fail(c, http.StatusInternalServerError, payments.ErrNotConfigured.Error())
		return
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	order, err := h.gateway.CreateOrder(input.Amount, input.Currency, receipt)
	if err != nil {
		h.log.Error().Err(err).Int64("amount", input.Amount).Msg("order creation failed")
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

type verifyInput struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPayment authenticates a gateway callback by recomputing its HMAC
// signature. Persisting the payment and upgrading the subscription are not
// done here; the response says so explicitly instead of pretending.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		fail(c, http.StatusBadRequest, "Missing payment details")
		return
	}

	if !h.verifier.Configured() {
		fail(c, http.StatusInternalServerError, payments.ErrNotConfigured.Error())
		return
	}

	if !h.verifier.Verify(input.OrderID, input.PaymentID, input.Signature) {
		fail(c, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	h.log.Info().Str("order_id", input.OrderID).Str("payment_id", input.PaymentID).Msg("payment verified")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
		"payment": gin.H{
			"orderId":   input.OrderID,
			"paymentId": input.PaymentID,
		},
		"subscriptionUpdated": false,
		"followUp":            "payment is verified but not persisted; apply subscription benefits via PUT /api/user/vip",
	})
}
