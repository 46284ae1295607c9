package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/lojavirtual-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/lojavirtual-backend/api/controllers/cart"
	"github.com/angelmondragon/lojavirtual-backend/api/middleware"
	"github.com/angelmondragon/lojavirtual-backend/internal/address"
	"github.com/angelmondragon/lojavirtual-backend/internal/auth"
	"github.com/angelmondragon/lojavirtual-backend/internal/cart"
	"github.com/angelmondragon/lojavirtual-backend/internal/categories"
	"github.com/angelmondragon/lojavirtual-backend/internal/companies"
	product "github.com/angelmondragon/lojavirtual-backend/internal/products"
	"github.com/angelmondragon/lojavirtual-backend/pkg/config"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
	"github.com/angelmondragon/lojavirtual-backend/pkg/metrics"
	"github.com/angelmondragon/lojavirtual-backend/pkg/redis"
)

// Services groups the domain services mounted on the router.
type Services struct {
	Auth       auth.Service
	Companies  companies.Service
	Categories categories.Service
	Products   product.Service
	Addresses  address.Service
	Cart       cart.Service
}

// NewRouter builds the HTTP surface. redisClient may be nil, in which case
// rate limiting and idempotency replay are disabled and readiness skips Redis.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	svc Services,
) http.Handler {
	var (
		limiter     redis.RateLimiter
		idemStore   redis.IdempotencyStore
		redisPinger controllers.Pinger
		registerer  prometheus.Registerer
	)
	if redisClient != nil {
		limiter, idemStore, redisPinger = redisClient, redisClient, redisClient
	}
	if registry != nil {
		registerer = registry
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		metrics.NewHTTPMetrics(registerer).Middleware,
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisPinger, logg))
	})
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, limiter, logg)).Post("/registrar", controllers.AuthRegister(svc.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(svc.Auth, logg))
	})

	r.Route("/empresas", func(r chi.Router) {
		r.Get("/", controllers.ListCompanies(svc.Companies, logg))
		r.Post("/", controllers.CreateCompany(svc.Companies, logg))
		r.Get("/{id}", controllers.GetCompany(svc.Companies, logg))
		r.Put("/{id}", controllers.UpdateCompany(svc.Companies, logg))
		r.Delete("/{id}", controllers.DeleteCompany(svc.Companies, logg))
	})

	r.Route("/categorias", func(r chi.Router) {
		r.Get("/", controllers.ListCategories(svc.Categories, logg))
		r.Post("/", controllers.CreateCategory(svc.Categories, logg))
		r.Get("/{id}", controllers.GetCategory(svc.Categories, logg))
		r.Put("/{id}", controllers.UpdateCategory(svc.Categories, logg))
		r.Delete("/{id}", controllers.DeleteCategory(svc.Categories, logg))
	})

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(svc.Products, logg))
		r.Post("/", controllers.CreateProduct(svc.Products, logg))
		r.Get("/{id}", controllers.GetProduct(svc.Products, logg))
		r.Put("/{id}", controllers.UpdateProduct(svc.Products, logg))
		r.Delete("/{id}", controllers.DeleteProduct(svc.Products, logg))
	})

	r.Route("/enderecos", func(r chi.Router) {
		r.Get("/empresa/{id_empresa}", controllers.ListCompanyAddresses(svc.Addresses, logg))
		r.Post("/", controllers.CreateAddress(svc.Addresses, logg))
		r.Put("/{id}", controllers.UpdateAddress(svc.Addresses, logg))
		r.Delete("/{id}", controllers.DeleteAddress(svc.Addresses, logg))
	})

	r.Route("/carrinho", func(r chi.Router) {
		r.Use(middleware.Auth(svc.Auth, logg))

		r.Get("/", cartcontrollers.List(svc.Cart, logg))
		r.With(middleware.Idempotency(idemStore, logg)).Post("/adicionar", cartcontrollers.AddItem(svc.Cart, logg))
		r.Delete("/remover/{id_produto}", cartcontrollers.RemoveItem(svc.Cart, logg))
	})

	return r
}
