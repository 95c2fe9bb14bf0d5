package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/handlers"
	"github.com/diewo77/go-billing/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux    *http.ServeMux
	tokens *auth.Tokens
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, tokens *auth.Tokens) *App {
	app := &App{
		mux:    http.NewServeMux(),
		tokens: tokens,
	}

	invoiceSvc := services.NewInvoiceService(db)

	ah := handlers.NewAuthHandler(db, tokens)
	ch := handlers.NewClientHandler(db)
	ph := handlers.NewProductHandler(db)
	ih := handlers.NewInvoiceHandler(invoiceSvc)
	dh := handlers.NewDashboardHandler(invoiceSvc)

	// ─────────────────────────────────────────────────────────────────────────
	// Public routes (no auth required)
	// ─────────────────────────────────────────────────────────────────────────
	app.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	app.mux.HandleFunc("POST /api/auth/register", ah.Register)
	app.mux.HandleFunc("POST /api/auth/login", ah.Login)

	// ─────────────────────────────────────────────────────────────────────────
	// Authenticated routes (require a valid bearer token)
	// ─────────────────────────────────────────────────────────────────────────
	app.handle("GET /api/auth/verify", ah.Verify)
	app.handle("POST /api/auth/logout", ah.Logout)

	app.handle("GET /api/clients", ch.List)
	app.handle("POST /api/clients", ch.Create)
	app.handle("GET /api/clients/{id}", ch.Get)
	app.handle("PUT /api/clients/{id}", ch.Update)
	app.handle("DELETE /api/clients/{id}", ch.Delete)

	app.handle("GET /api/products", ph.List)
	app.handle("POST /api/products", ph.Create)
	app.handle("GET /api/products/{id}", ph.Get)
	app.handle("PUT /api/products/{id}", ph.Update)
	app.handle("DELETE /api/products/{id}", ph.Delete)

	app.handle("GET /api/invoices", ih.List)
	app.handle("POST /api/invoices", ih.Create)
	app.handle("GET /api/invoices/{id}", ih.Get)
	app.handle("PUT /api/invoices/{id}", ih.Update)
	app.handle("DELETE /api/invoices/{id}", ih.Delete)

	app.handle("GET /api/dashboard", dh.Summary)

	return app
}

// handle registers an authenticated route.
func (a *App) handle(pattern string, fn http.HandlerFunc) {
	a.mux.Handle(pattern, auth.RequireAuth(fn))
}

// ServeHTTP implements http.Handler. The token middleware runs first so every
// handler below it can rely on the user id in the request context.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.tokens.Middleware(a.mux).ServeHTTP(w, r)
}
