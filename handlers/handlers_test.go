package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"webepex/auth"
	"webepex/middleware"
	"webepex/models"
	"webepex/payments"
	"webepex/store"
)

const testJWTSecret = "handler-test-secret"
const testGatewaySecret = "gateway-test-secret"

// stubGateway stands in for Razorpay in tests.
type stubGateway struct {
	err  error
	last *models.Order
}

func (g *stubGateway) CreateOrder(amount int64, currency, receipt string) (*models.Order, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.last = &models.Order{
		ID:       "order_stub123",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	return g.last, nil
}

type testEnv struct {
	router  *gin.Engine
	users   store.UserStore
	tokens  *auth.TokenIssuer
	gateway *stubGateway
}

// newTestEnv builds a router with the full route table from main, backed by
// the in-memory store and a stub payment gateway.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenIssuer(testJWTSecret, auth.DefaultTokenTTL)
	require.NoError(t, err)

	users := store.NewMemoryStore()
	gateway := &stubGateway{}
	verifier := payments.NewSignatureVerifier(testGatewaySecret)
	log := zerolog.Nop()

	authHandler := NewAuthHandler(users, tokens, nil, log)
	userHandler := NewUserHandler(users, log)
	paymentHandler := NewPaymentHandler(gateway, verifier, log)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)
		api.POST("/auth/logout", authHandler.Logout)

		user := api.Group("/user", middleware.AuthRequired(tokens))
		{
			user.GET("/me", userHandler.Me)
			user.PUT("/vip", userHandler.UpdateStatus)
		}

		api.GET("/game/types", ListGameTypes)

		api.POST("/payments/create-order", paymentHandler.CreateOrder)
		api.POST("/payments/verify", paymentHandler.VerifyPayment)
	}

	return &testEnv{router: r, users: users, tokens: tokens, gateway: gateway}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	parsed := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

// signup registers a user and returns the issued token.
func (e *testEnv) signup(t *testing.T, email, fullName, password string) string {
	t.Helper()

	rec, body := e.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    email,
		"fullName": fullName,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "signup body: %s", rec.Body.String())

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func userField(t *testing.T, body map[string]interface{}, key string) interface{} {
	t.Helper()
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "response has no user object: %v", body)
	return user[key]
}
