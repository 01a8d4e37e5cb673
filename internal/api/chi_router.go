// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/cardcast/internal/api/docs"
	"github.com/tomtom215/cardcast/internal/auth"
	"github.com/tomtom215/cardcast/internal/authz"
	"github.com/tomtom215/cardcast/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	authz         *authz.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the router.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, authzMiddleware *authz.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		authz:         authzMiddleware,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Not found")
	})

	r.Get("/welcome", router.handler.Welcome)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/dev/token", router.handler.DevToken)

		r.Group(func(r chi.Router) {
			r.Use(router.auth.Handler)

			r.With(router.authz.Require(authz.ObjectCards, authz.ActionRead, denyCards)).
				Get("/cards", router.handler.ListCards)
			r.With(router.authz.Require(authz.ObjectCards, authz.ActionRead, denyCards)).
				Get("/cards/{id}", router.handler.GetCard)
			r.With(router.authz.Require(authz.ObjectOverlay, authz.ActionBroadcast, denyBroadcast)).
				Post("/pubsub/broadcast", router.handler.Broadcast)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	return r
}

func denyCards(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Forbidden(msgCardsForbidden)
}

func denyBroadcast(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Forbidden(msgBroadcastForbidden)
}
