package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/filter"
	"github.com/ashkanani/agency/internal/handler"
	adminhandler "github.com/ashkanani/agency/internal/handler/admin"
	"github.com/ashkanani/agency/internal/projection"
	"github.com/ashkanani/agency/internal/service"
	"github.com/ashkanani/agency/internal/store"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Store   *store.Store
	JWTMgr  *auth.JWTManager
	Clock   clockwork.Clock
	Logger  *slog.Logger
	AuthSvc *service.AuthService
	Audit   *service.AuditPublisher
	Health  handler.Pinger // nil for the memory driver
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	st := deps.Store

	engine := filter.NewEngine(deps.Clock)
	projector := projection.NewProjector(deps.Clock)
	dashboardSvc := service.NewDashboardService(st, deps.Clock)

	// Handlers
	authHandler := handler.NewAuthHandler(deps.AuthSvc)
	publicHandler := handler.NewPublicHandler(st.Players, st.Contracts, engine, projector)
	playerHandler := handler.NewPlayerHandler(st.Players, st.Contracts, engine)
	contractHandler := handler.NewContractHandler(st.Contracts)
	agentHandler := handler.NewAgentHandler(st.Agents)

	// Admin handlers
	playerAdmin := adminhandler.NewPlayerAdminHandler(st.Players, st.Agents, deps.Audit)
	contractAdmin := adminhandler.NewContractAdminHandler(st.Contracts, st.Players, deps.Audit)
	agentAdmin := adminhandler.NewAgentAdminHandler(st.Agents, deps.Audit)
	opsAdmin := adminhandler.NewOperationsHandler(st.Employees, st.Finance, deps.Audit)
	reportsAdmin := adminhandler.NewReportsHandler(dashboardSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(deps.Logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(deps.Logger))
	r.Use(handler.CORS)
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(deps.Health))

	// Auth routes (no auth)
	r.Post("/auth/login", authHandler.Login)

	// Public showcase (no auth, projected records only)
	r.Route("/public/players", func(r chi.Router) {
		r.Get("/", publicHandler.ListPublicPlayers)
		r.Get("/{id}", publicHandler.GetPublicPlayer)
	})

	// Console routes (staff auth)
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Authenticate(deps.JWTMgr))

		r.Get("/dashboard", reportsAdmin.GetDashboardStats)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListPlayers)
			r.Get("/{id}", playerHandler.GetPlayer)
			r.Get("/{id}/contracts", playerHandler.ListPlayerContracts)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.WriteRoles()...))
				r.Post("/", playerAdmin.CreatePlayer)
				r.Put("/{id}", playerAdmin.UpdatePlayer)
				r.Delete("/{id}", playerAdmin.DeletePlayer)
			})
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", contractHandler.ListContracts)
			r.Get("/{id}", contractHandler.GetContract)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.WriteRoles()...))
				r.Post("/", contractAdmin.CreateContract)
				r.Put("/{id}", contractAdmin.UpdateContract)
				r.Delete("/{id}", contractAdmin.DeleteContract)
			})
		})

		r.Route("/agents", func(r chi.Router) {
			r.Get("/", agentHandler.ListAgents)
			r.Get("/{id}", agentHandler.GetAgent)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.WriteRoles()...))
				r.Post("/", agentAdmin.CreateAgent)
				r.Put("/{id}", agentAdmin.UpdateAgent)
				r.Delete("/{id}", agentAdmin.DeleteAgent)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.WriteRoles()...))
			r.Get("/", opsAdmin.ListEmployees)
			r.Post("/", opsAdmin.CreateEmployee)
			r.Put("/{id}", opsAdmin.UpdateEmployee)
			r.Delete("/{id}", opsAdmin.DeleteEmployee)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleOwner))
			r.Get("/", opsAdmin.ListFinanceRecords)
			r.Post("/", opsAdmin.CreateFinanceRecord)
			r.Put("/{id}", opsAdmin.UpdateFinanceRecord)
			r.Delete("/{id}", opsAdmin.DeleteFinanceRecord)
		})
	})

	return r
}
