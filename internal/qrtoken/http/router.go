package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/service"
	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/store"
	"github.com/aussiebroadwan/qrtoken/pkg/httpx"
	"github.com/aussiebroadwan/qrtoken/pkg/slogx"

	_ "github.com/aussiebroadwan/qrtoken/api/qrtoken" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits groups the per-IP limits applied to each route class.
type RateLimits struct {
	Write  httpx.RateLimitConfig
	Read   httpx.RateLimitConfig
	Health httpx.RateLimitConfig
}

// DefaultRateLimits returns the built-in profiles from httpx.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Write:  httpx.WriteLimit,
		Read:   httpx.ReadLimit,
		Health: httpx.HealthLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       RateLimits

	store          store.Store
	QRTokenService *service.QRTokenService
}

func NewRouter(buildVersion string, st store.Store, limits RateLimits, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		limits:       limits,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerQRTokens()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			QR Token Service API
//	@version		0.1.0
//	@description	Receives QR tokens from the issuer and serves lookup, validation, mark-used and delete operations.
//	@description
//	@description	Tokens are 32 alphanumeric characters. Each record carries a base64 PNG QR code encoding its token.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/qrtoken
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerQRTokens() {
	h := &QRTokenHandler{QRTokenService: r.QRTokenService}

	write := httpx.RateLimitByIP(r.limits.Write)
	read := httpx.RateLimitByIP(r.limits.Read)

	r.Mux.Handle("POST /qrtoken", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("GET /qrtoken", httpx.Chain(http.HandlerFunc(h.HandleList), read))

	// Literal segments win over {id} in ServeMux precedence
	r.Mux.Handle("GET /qrtoken/validate", httpx.Chain(http.HandlerFunc(h.HandleValidate), read))
	r.Mux.Handle("GET /qrtoken/by-token/{token}", httpx.Chain(http.HandlerFunc(h.HandleFindByToken), read))
	r.Mux.Handle("GET /qrtoken/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))

	r.Mux.Handle("PATCH /qrtoken/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write))
	r.Mux.Handle("PATCH /qrtoken/{id}/mark-used", httpx.Chain(http.HandlerFunc(h.HandleMarkUsed), write))
	r.Mux.Handle("DELETE /qrtoken/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	health := httpx.RateLimitByIP(r.limits.Health)

	r.Mux.Handle("GET /livez", httpx.Chain(LivezHandler(r.startTime, r.buildVersion), health))
	r.Mux.Handle("GET /readyz", httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), health))
}
