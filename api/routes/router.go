package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rkhatri/vastra-backend/api/controllers"
	"github.com/rkhatri/vastra-backend/api/middleware"
	authsvc "github.com/rkhatri/vastra-backend/internal/auth"
	"github.com/rkhatri/vastra-backend/internal/cart"
	category "github.com/rkhatri/vastra-backend/internal/categories"
	"github.com/rkhatri/vastra-backend/internal/content"
	coupon "github.com/rkhatri/vastra-backend/internal/coupons"
	invoice "github.com/rkhatri/vastra-backend/internal/invoices"
	payment "github.com/rkhatri/vastra-backend/internal/payments"
	product "github.com/rkhatri/vastra-backend/internal/products"
	variant "github.com/rkhatri/vastra-backend/internal/variants"
	wholesaler "github.com/rkhatri/vastra-backend/internal/wholesalers"
	"github.com/rkhatri/vastra-backend/internal/wishlist"
	"github.com/rkhatri/vastra-backend/pkg/auth/session"
	"github.com/rkhatri/vastra-backend/pkg/config"
	"github.com/rkhatri/vastra-backend/pkg/db"
	"github.com/rkhatri/vastra-backend/pkg/enums"
	"github.com/rkhatri/vastra-backend/pkg/logger"
	"github.com/rkhatri/vastra-backend/pkg/metrics"
	"github.com/rkhatri/vastra-backend/pkg/redis"
)

// Services bundles every domain service the router mounts.
type Services struct {
	Auth        authsvc.Service
	Products    product.Service
	Variants    variant.Service
	Wholesalers wholesaler.Service
	Invoices    invoice.Service
	Categories  category.Service
	Content     content.Service
	Coupons     coupon.Service
	Cart        cart.Service
	Wishlist    wishlist.Service
	Payments    payment.Service
}

// NewRouter assembles the full HTTP surface: ops endpoints, the public
// storefront API, the authenticated customer API, and the admin API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	requireAuth := middleware.Auth(cfg.JWT, sessions, logg)
	requireAdmin := middleware.RequireRole(string(enums.UserRoleAdmin), logg)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		cfg.RateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.RateLimit.SignupWindow,
		cfg.RateLimit.SignupIPLimit,
		cfg.RateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbClient, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	if cfg.Uploads.Dir != "" {
		fileServer := http.FileServer(http.Dir(cfg.Uploads.Dir))
		r.Handle(cfg.Uploads.PublicBase+"/*", http.StripPrefix(cfg.Uploads.PublicBase+"/", fileServer))
	}

	maxUploadBytes := int64(cfg.Uploads.MaxUploadMB) << 20

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).
				Post("/signup", controllers.AuthSignup(svcs.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
				Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.Post("/verify-email", controllers.AuthVerifyEmail(svcs.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
				Post("/forgot-password", controllers.AuthForgotPassword(svcs.Auth, logg))
			r.Post("/reset-password", controllers.AuthResetPassword(svcs.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))
				r.Get("/session", controllers.AuthSession(svcs.Auth, logg))
			})
		})

		r.Get("/products", controllers.PublicListProducts(svcs.Products, logg))
		r.Get("/products/{slug}", controllers.PublicGetProduct(svcs.Products, logg))
		r.Get("/categories", controllers.PublicListCategories(svcs.Categories, logg))
		r.Get("/categories/{slug}/products", controllers.PublicCategoryProducts(svcs.Categories, logg))
		r.Get("/header-categories", controllers.PublicListHeaderCategories(svcs.Categories, logg))
		r.Get("/banners", controllers.PublicListBanners(svcs.Content, logg))
		r.Get("/testimonials", controllers.PublicListTestimonials(svcs.Content, logg))
		r.Get("/blogs", controllers.PublicListBlogs(svcs.Content, logg))
		r.Get("/blogs/{slug}", controllers.PublicGetBlog(svcs.Content, logg))
		r.Get("/coupons/{slug}", controllers.PublicGetCoupon(svcs.Coupons, logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/cart", controllers.CartList(svcs.Cart, logg))
			r.Post("/cart", controllers.CartAdd(svcs.Cart, logg))
			r.Put("/cart/{productId}", controllers.CartUpdateQuantity(svcs.Cart, logg))
			r.Delete("/cart/{productId}", controllers.CartRemove(svcs.Cart, logg))

			r.Get("/wishlist", controllers.WishlistList(svcs.Wishlist, logg))
			r.Post("/wishlist/{productId}", controllers.WishlistAdd(svcs.Wishlist, logg))
			r.Delete("/wishlist/{productId}", controllers.WishlistRemove(svcs.Wishlist, logg))

			r.Post("/payment/orders", controllers.PaymentCreateOrder(svcs.Payments, logg))
			r.Get("/payment/orders", controllers.PaymentListOrders(svcs.Payments, logg))
			r.Get("/payment/orders/{id}", controllers.PaymentGetOrder(svcs.Payments, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)

			r.Post("/products", controllers.AdminCreateProduct(svcs.Products, logg))
			r.Get("/products", controllers.AdminListProducts(svcs.Products, logg))
			r.Get("/products/{id}", controllers.AdminGetProduct(svcs.Products, logg))
			r.Put("/products/{id}", controllers.AdminUpdateProduct(svcs.Products, logg))
			r.Delete("/products/{id}", controllers.AdminDeleteProduct(svcs.Products, logg))
			r.Post("/products/{id}/variants/{kind}/new", controllers.AdminCreateVariantForProduct(svcs.Variants, logg))

			r.Route("/variants/{kind}", func(r chi.Router) {
				r.Post("/", controllers.AdminCreateVariant(svcs.Variants, logg))
				r.Get("/", controllers.AdminListVariants(svcs.Variants, logg))
				r.Get("/{id}", controllers.AdminGetVariant(svcs.Variants, logg))
				r.Put("/{id}", controllers.AdminUpdateVariant(svcs.Variants, logg))
				r.Delete("/{id}", controllers.AdminDeleteVariant(svcs.Variants, logg))
			})

			r.Post("/wholesalers", controllers.AdminCreateWholesaler(svcs.Wholesalers, logg))
			r.Get("/wholesalers", controllers.AdminListWholesalers(svcs.Wholesalers, logg))
			r.Get("/wholesalers/{id}", controllers.AdminGetWholesaler(svcs.Wholesalers, logg))
			r.Put("/wholesalers/{id}", controllers.AdminUpdateWholesaler(svcs.Wholesalers, logg))
			r.Delete("/wholesalers/{id}", controllers.AdminDeleteWholesaler(svcs.Wholesalers, logg))

			r.Post("/invoices", controllers.AdminCreateInvoice(svcs.Invoices, logg))
			r.Get("/invoices", controllers.AdminListInvoices(svcs.Invoices, logg))
			r.Get("/invoices/{id}", controllers.AdminGetInvoice(svcs.Invoices, logg))
			r.Put("/invoices/{id}", controllers.AdminUpdateInvoice(svcs.Invoices, logg))
			r.Delete("/invoices/{id}", controllers.AdminDeleteInvoice(svcs.Invoices, logg))

			r.Post("/categories", controllers.AdminCreateCategory(svcs.Categories, logg))
			r.Get("/categories", controllers.AdminListCategories(svcs.Categories, logg))
			r.Get("/categories/{id}", controllers.AdminGetCategory(svcs.Categories, logg))
			r.Put("/categories/{id}", controllers.AdminUpdateCategory(svcs.Categories, logg))
			r.Delete("/categories/{id}", controllers.AdminDeleteCategory(svcs.Categories, logg))
			r.Post("/categories/{id}/image", controllers.AdminUploadCategoryImage(svcs.Categories, maxUploadBytes, logg))

			r.Post("/header-categories", controllers.AdminCreateHeaderCategory(svcs.Categories, logg))
			r.Get("/header-categories", controllers.AdminListHeaderCategories(svcs.Categories, logg))
			r.Get("/header-categories/{id}", controllers.AdminGetHeaderCategory(svcs.Categories, logg))
			r.Put("/header-categories/{id}", controllers.AdminUpdateHeaderCategory(svcs.Categories, logg))
			r.Delete("/header-categories/{id}", controllers.AdminDeleteHeaderCategory(svcs.Categories, logg))

			r.Post("/banners", controllers.AdminCreateBanner(svcs.Content, logg))
			r.Get("/banners", controllers.AdminListBanners(svcs.Content, logg))
			r.Get("/banners/{id}", controllers.AdminGetBanner(svcs.Content, logg))
			r.Put("/banners/{id}", controllers.AdminUpdateBanner(svcs.Content, logg))
			r.Delete("/banners/{id}", controllers.AdminDeleteBanner(svcs.Content, logg))

			r.Post("/testimonials", controllers.AdminCreateTestimonial(svcs.Content, logg))
			r.Get("/testimonials", controllers.AdminListTestimonials(svcs.Content, logg))
			r.Get("/testimonials/{id}", controllers.AdminGetTestimonial(svcs.Content, logg))
			r.Put("/testimonials/{id}", controllers.AdminUpdateTestimonial(svcs.Content, logg))
			r.Delete("/testimonials/{id}", controllers.AdminDeleteTestimonial(svcs.Content, logg))

			r.Post("/blogs", controllers.AdminCreateBlog(svcs.Content, logg))
			r.Get("/blogs", controllers.AdminListBlogs(svcs.Content, logg))
			r.Get("/blogs/{id}", controllers.AdminGetBlog(svcs.Content, logg))
			r.Put("/blogs/{id}", controllers.AdminUpdateBlog(svcs.Content, logg))
			r.Delete("/blogs/{id}", controllers.AdminDeleteBlog(svcs.Content, logg))

			r.Post("/coupons", controllers.AdminCreateCoupon(svcs.Coupons, logg))
			r.Get("/coupons", controllers.AdminListCoupons(svcs.Coupons, logg))
			r.Get("/coupons/{id}", controllers.AdminGetCoupon(svcs.Coupons, logg))
			r.Put("/coupons/{id}", controllers.AdminUpdateCoupon(svcs.Coupons, logg))
			r.Delete("/coupons/{id}", controllers.AdminDeleteCoupon(svcs.Coupons, logg))
		})
	})

	return r
}
