package app

import (
	"fmt"
	"net/http"

	"github.com/Shouganaii/tdd-clean-go-api/internal/app/deps"
	"github.com/Shouganaii/tdd-clean-go-api/internal/app/services"
	drl "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/rate_limiter"
	signup "github.com/Shouganaii/tdd-clean-go-api/internal/http/handlers/auth/sign_up"
	"github.com/Shouganaii/tdd-clean-go-api/internal/http/handlers/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Use(ratelimit.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.SignUpRateLimitPerHour},
		"sign-up",
	))
	authRouter.Method(http.MethodPost, "/signup", signup.New(deps.EmailValidator, s.SignUp))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
