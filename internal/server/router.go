package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resto-backend/internal/config"
	"resto-backend/internal/domain"
	"resto-backend/internal/handler"
)

// NewRouter wires HTTP routes and middleware. Reads are open to any
// authenticated staff; mutations and reporting are admin-only.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	menu handler.MenuHandler,
	categories handler.CategoryHandler,
	payments handler.PaymentHandler,
	reports handler.ReportHandler,
	dashboard handler.DashboardHandler,
	staff handler.StaffHandler,
	tables handler.TableHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	auth.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		auth.RegisterProtectedRoutes(pr)

		// any authenticated staff can browse the menu
		pr.Group(func(sr chi.Router) {
			sr.Use(RequireRole(domain.RoleAdmin, domain.RoleChef, domain.RoleCashier, domain.RoleWaiter))
			menu.RegisterRoutes(sr)
		})

		// cashier-level (cashier/admin): payment registration
		pr.Group(func(cr chi.Router) {
			cr.Use(RequireRole(domain.RoleAdmin, domain.RoleCashier))
			payments.RegisterRoutes(cr)
			tables.RegisterRoutes(cr)
		})

		// admin-level: menu/category management, staff, reporting
		pr.Group(func(ar chi.Router) {
			ar.Use(RequireRole(domain.RoleAdmin))
			menu.RegisterAdminRoutes(ar)
			categories.RegisterRoutes(ar)
			reports.RegisterRoutes(ar)
			dashboard.RegisterRoutes(ar)
			staff.RegisterRoutes(ar)
		})
	})

	return r
}
