package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/couriersync/couriersync/internal/auth/service"
	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/couriersync/couriersync/pkg/httpx"
	"github.com/couriersync/couriersync/pkg/sessionx"
	"github.com/couriersync/couriersync/pkg/slogx"

	_ "github.com/couriersync/couriersync/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookieSecure bool

	store    store.Store
	sessions *sessionx.Store

	LoginService    *service.LoginService
	RegisterService *service.RegisterService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions *sessionx.Store,
	cookieSecure bool,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		cookieSecure: cookieSecure,
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProtected()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CourierSync Authentication Service API
//	@version		0.1.0
//	@description	Session-based authentication and registration service for the CourierSync platform.
//	@description
//	@description				Authenticated requests carry an opaque session cookie issued at login.
//
//	@contact.name				CourierSync Team
//	@contact.url				https://github.com/couriersync/couriersync
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
	loginHandler := &LoginHandler{
		LoginService: r.LoginService,
		CookieSecure: r.cookieSecure,
	}

	// POST /login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /register - strict rate limit (public signup endpoint)
	registerHandler := &RegisterHandler{RegisterService: r.RegisterService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /logout - moderate rate limit. Not gated: logging out with a
	// dead session still lands on the login page.
	logoutHandler := &LogoutHandler{
		Sessions:     r.sessions,
		CookieSecure: r.cookieSecure,
	}
	r.Mux.Handle("POST /logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProtected() {
	gate := sessionx.Require(r.sessions)

	// GET /panel - session-gated resource, lenient rate limit
	r.Mux.Handle("GET /panel",
		httpx.Chain(PanelHandler(),
			gate,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /v1/profile - session-gated, lenient rate limit
	profileHandler := &ProfileHandler{Store: r.store}
	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(profileHandler,
			gate,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
