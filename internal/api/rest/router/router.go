package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/messagely-server/internal/api/rest/handler"
	"github.com/dtroode/messagely-server/internal/api/rest/middleware"
	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/metrics"
	"github.com/dtroode/messagely-server/internal/model"
)

// Deps groups what the router wires into handlers and middleware.
type Deps struct {
	AuthService    handler.AuthService
	UserService    handler.UserService
	MessageService handler.MessageService
	TokenService   middleware.TokenService
	ContextManager model.ContextManager
	Database       handler.Pinger
	Recorder       middleware.HTTPRecorder
	Gatherer       prometheus.Gatherer
	Logger         *logger.Logger
}

// Router builds the HTTP route tree.
type Router struct {
	deps Deps
}

// New creates a Router from deps.
func New(deps Deps) *Router {
	return &Router{deps: deps}
}

// Register returns the root handler. Everything except /auth, /health and
// /metrics requires a bearer token.
func (r *Router) Register() http.Handler {
	d := r.deps
	logging := middleware.NewLogging(d.Logger)
	authenticate := middleware.NewAuthenticate(d.TokenService, d.ContextManager, d.Logger)

	mux := chi.NewRouter()
	mux.Use(middleware.NewRecovery(d.Logger))
	mux.Use(logging.Handle)
	mux.Use(middleware.NewMetrics(d.Recorder))

	health := handler.NewHealth(d.Database, d.Logger)
	mux.Get("/health", health.Check)
	mux.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))

	r.registerAuthRoutes(mux)

	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)
		r.registerUserRoutes(protected)
		r.registerMessageRoutes(protected)
	})

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.deps.AuthService, r.deps.Logger)

	mux.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", authHandler.Register)
		ar.Post("/login", authHandler.Login)
	})
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	userHandler := handler.NewUser(r.deps.UserService, r.deps.ContextManager, r.deps.Logger)

	mux.Route("/users", func(ur chi.Router) {
		ur.Get("/", userHandler.List)
		ur.Route("/{username}", func(ur chi.Router) {
			ur.Get("/", userHandler.Get)
			ur.Get("/to", userHandler.MessagesTo)
			ur.Get("/from", userHandler.MessagesFrom)
		})
	})
}

func (r *Router) registerMessageRoutes(mux chi.Router) {
	messageHandler := handler.NewMessage(r.deps.MessageService, r.deps.ContextManager, r.deps.Logger)

	mux.Route("/messages", func(mr chi.Router) {
		mr.Post("/", messageHandler.Create)
		mr.Route("/{id}", func(mr chi.Router) {
			mr.Get("/", messageHandler.Get)
			mr.Post("/read", messageHandler.MarkRead)
		})
	})
}
