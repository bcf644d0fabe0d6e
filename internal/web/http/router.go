package http

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/midas-agency/midas/internal/web/lowcode"
	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/internal/web/session"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/slogx"

	_ "github.com/midas-agency/midas/api/web" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed static
var staticFS embed.FS

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	gatherer     prometheus.Gatherer

	store     store.Store
	directory *lowcode.Client

	Sessions         *session.Manager
	Metrics          *metrics.Collector
	AuthService      *service.AuthService
	DirectoryService *service.DirectoryService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	directory *lowcode.Client,
	sessions *session.Manager,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		gatherer:     gatherer,
		store:        st,
		directory:    directory,
		Sessions:     sessions,
		Metrics:      collector,
	}

	// Set default middleware chain; the session resolver runs on every
	// request so the pages and the API share one authentication path.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		collector.Middleware,
		sessions.Authenticate,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerDirectory()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Midas Agency Portal API
//	@version		0.1.0
//	@description	Marketing site and client portal for the Midas agency: account
//	@description	registration and login against the agency's Mida_Login table, profile
//	@description	management, and a read-only KOL directory backed by a low-code table
//	@description	service.
//
//	@contact.name				Midas Agency
//	@contact.url				https://github.com/midas-agency/midas
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (public account creation)
	registerHandler := &RegisterHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
		Metrics:     r.Metrics,
	}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
		Metrics:     r.Metrics,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - moderate rate limit, works with or without a session
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(&LogoutHandler{Sessions: r.Sessions},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
		Metrics:     r.Metrics,
	}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			session.RequireUser,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandlePatch),
			session.RequireUser,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDirectory() {
	h := &DirectoryHandler{
		DirectoryService: r.DirectoryService,
		Metrics:          r.Metrics,
	}

	// Authenticated endpoint - the roster is for signed-in clients only
	r.Mux.Handle("GET /v1/kol",
		httpx.Chain(h,
			session.RequireUser,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPages() {
	pages := NewPagesHandler(r.DirectoryService)

	lenient := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /{$}", lenient(pages.HandleHome))
	r.Mux.Handle("GET /services", lenient(pages.HandleServices))
	r.Mux.Handle("GET /services/{slug}", lenient(pages.HandleServiceDetail))
	r.Mux.Handle("GET /work", lenient(pages.HandleWork))
	r.Mux.Handle("GET /case-studies", lenient(pages.HandleCaseStudies))
	r.Mux.Handle("GET /case-studies/{id}", lenient(pages.HandleCaseStudy))
	r.Mux.Handle("GET /login", lenient(pages.HandleLogin))
	r.Mux.Handle("GET /register", lenient(pages.HandleRegister))
	r.Mux.Handle("GET /dashboard", lenient(pages.HandleDashboard))
	r.Mux.Handle("GET /kol", lenient(pages.HandleKOL))

	// The portal used to be one combined page; keep the old URL working.
	r.Mux.Handle("GET /portal", http.RedirectHandler("/dashboard", http.StatusMovedPermanently))

	r.Mux.Handle("GET /static/", http.FileServerFS(staticFS))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.directory),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
}
