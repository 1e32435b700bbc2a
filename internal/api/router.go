package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sustainlite/sustainlite-api/docs" // registers the OpenAPI document
	"github.com/sustainlite/sustainlite-api/internal/api/handler"
	"github.com/sustainlite/sustainlite-api/internal/api/middleware"
	"github.com/sustainlite/sustainlite-api/internal/core/ports"
	"github.com/sustainlite/sustainlite-api/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Logger     zerolog.Logger
	Auth       ports.AuthService
	Activities ports.ActivityService
	Insights   ports.InsightService

	// ReadinessChecks are probed by GET /health/ready, keyed by dependency name.
	ReadinessChecks map[string]handlers.Checker
	AllowedOrigins  []string

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "sustainlite",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.ReadinessChecks, deps.Logger)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	activityHandler := handler.NewActivityHandler(deps.Activities)
	insightHandler := handler.NewInsightHandler(deps.Insights)

	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	requireUser := middleware.Auth(deps.Auth)
	api.GET("/users/me", authHandler.Me, requireUser)
	api.POST("/activities", activityHandler.Create, requireUser)
	api.GET("/activities", activityHandler.List, requireUser)
	api.GET("/activities/:id", activityHandler.Get, requireUser)
	api.DELETE("/activities/:id", activityHandler.Delete, requireUser)
	api.GET("/dashboard", insightHandler.Dashboard, requireUser)
	api.GET("/recommendations", insightHandler.Recommendations, requireUser)

	return e
}
