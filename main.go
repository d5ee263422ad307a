package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"webepex/auth"
	"webepex/config"
	"webepex/handlers"
	"webepex/middleware"
	"webepex/payments"
	"webepex/services"
	"webepex/store"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer setup failed")
	}

	users := openStore(cfg, log)

	var gateway payments.Gateway
	if cfg.RazorpayConfigured() {
		rzp, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		if err != nil {
			log.Fatal().Err(err).Msg("razorpay setup failed")
		}
		gateway = rzp
	} else {
		log.Warn().Msg("Razorpay credentials not set; payment order creation will fail")
	}
	verifier := payments.NewSignatureVerifier(cfg.RazorpayKeySecret)

	mailer := services.NewWelcomeMailer(cfg.SendGridAPIKey, cfg.WelcomeEmailFrom, log)

	authHandler := handlers.NewAuthHandler(users, tokens, mailer, log)
	userHandler := handlers.NewUserHandler(users, log)
	paymentHandler := handlers.NewPaymentHandler(gateway, verifier, log)

	r := gin.Default()

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

		api.GET("/game/types", handlers.ListGameTypes)

		api.POST("/payments/create-order", paymentHandler.CreateOrder)
		api.POST("/payments/verify", paymentHandler.VerifyPayment)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore picks the durable Postgres store when DATABASE_URL is set and
// falls back to the volatile in-memory store otherwise.
func openStore(cfg *config.Config, log zerolog.Logger) store.UserStore {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set; using volatile in-memory store")
		return store.NewMemoryStore()
	}

	pg, err := store.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	schema, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read schema.sql")
	}
	if err := pg.Migrate(string(schema)); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}
	log.Info().Msg("database schema verified")

	return pg
}
