package router

import (
	"net/http"

	_ "github.com/RoyceAzure/lab/storefront/docs"
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/metrics"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limiters 三種限流: general 套用全部路由, auth 套用登入註冊, api 套用商品購物車訂單與後台
type Limiters struct {
	General ratelimit.KeyedLimiter
	Auth    ratelimit.KeyedLimiter
	Api     ratelimit.KeyedLimiter
}

type Options struct {
	AuthService service.IAuthService
	Limiters    Limiters
	Metrics     *metrics.Metrics
	// 上傳圖片的本機目錄, 以 /uploads 對外提供
	UploadDir string
	Logger    *zerolog.Logger
}

func SetupRouter(server *Server, opts Options) *chi.Mux {
	r := chi.NewRouter()

	generalLimit := m.NewRateLimitMiddleware(m.GeneralLimiterName, opts.Limiters.General, opts.Metrics)
	authLimit := m.NewRateLimitMiddleware(m.AuthLimiterName, opts.Limiters.Auth, opts.Metrics)
	apiLimit := m.NewRateLimitMiddleware(m.ApiLimiterName, opts.Limiters.Api, opts.Metrics)

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	// payload 要在logger之前, log才拿得到user_id
	r.Use(m.AuthPayloadMiddleware(opts.AuthService))
	r.Use(m.LoggerMiddleware(opts.Logger, opts.Metrics))
	r.Use(m.RecoverMiddleware)

	r.Handle("/metrics", opts.Metrics.Handler())

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	if opts.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Use(generalLimit)

		r.Get("/", server.HealthHandler.Info)
		r.Get("/health", server.HealthHandler.Health)
		r.Get("/ready", server.HealthHandler.Ready)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit).Post("/register", server.AuthHandler.Register)
			r.With(authLimit).Post("/login", server.AuthHandler.Login)
			r.Post("/logout", server.AuthHandler.Logout)
			r.With(authLimit).Post("/forgot-password", server.AuthHandler.ForgotPassword)
			r.With(authLimit).Put("/reset-password/{resettoken}", server.AuthHandler.ResetPassword)

			r.With(authLimit).Post("/admin/login", server.AuthHandler.AdminLogin)
			r.With(authLimit, m.AuthMiddleware, m.AdminMiddleware).Post("/admin/register", server.AuthHandler.AdminRegister)

			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware)
				r.Get("/me", server.AuthHandler.Me)
				r.Put("/update-profile", server.AuthHandler.UpdateProfile)
				r.Put("/change-password", server.AuthHandler.ChangePassword)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.With(apiLimit).Get("/", server.ProductHandler.ListProducts)
			r.With(apiLimit).Get("/search", server.ProductHandler.SearchProducts)
			r.With(apiLimit).Get("/top", server.ProductHandler.TopProducts)
			r.With(apiLimit).Get("/featured", server.ProductHandler.FeaturedProducts)
			r.With(apiLimit).Get("/category/{category}", server.ProductHandler.ProductsByCategory)
			r.With(apiLimit).Get("/{id}", server.ProductHandler.GetProduct)
			r.With(apiLimit).Get("/{id}/reviews", server.ReviewHandler.ListReviews)

			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware)
				r.Post("/{id}/reviews", server.ReviewHandler.AddReview)
				r.Delete("/{id}/reviews/{reviewId}", server.ReviewHandler.DeleteReview)
			})

			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware, m.AdminMiddleware)
				r.Post("/", server.ProductHandler.CreateProduct)
				r.Put("/{id}", server.ProductHandler.UpdateProduct)
				r.Delete("/{id}", server.ProductHandler.DeleteProduct)
				r.Post("/{id}/upload-image", server.ProductHandler.UploadImage)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(m.AuthMiddleware, apiLimit)
			r.Get("/", server.CartHandler.GetCart)
			r.Post("/add", server.CartHandler.AddToCart)
			r.Put("/{productId}", server.CartHandler.UpdateCartItem)
			r.Delete("/{productId}", server.CartHandler.RemoveFromCart)
			r.Delete("/", server.CartHandler.ClearCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Group(func(r chi.Router) {
				r.Use(apiLimit)
				r.Post("/", server.OrderHandler.PlaceOrder)
				r.Get("/my-orders", server.OrderHandler.MyOrders)
				r.Get("/{id}", server.OrderHandler.GetOrder)
				r.Put("/{id}/pay", server.OrderHandler.PayOrder)
			})

			r.Group(func(r chi.Router) {
				r.Use(m.AdminMiddleware)
				r.Get("/", server.OrderHandler.ListOrders)
				r.Get("/stats/overview", server.OrderHandler.Stats)
				r.Put("/{id}/status", server.OrderHandler.UpdateStatus)
				r.Put("/{id}/deliver", server.OrderHandler.MarkDelivered)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(m.AuthMiddleware, m.AdminMiddleware, apiLimit)
			r.Get("/dashboard", server.AdminHandler.Dashboard)
			r.Get("/users", server.AdminHandler.ListUsers)
			r.Get("/users/{id}", server.AdminHandler.GetUser)
			r.Put("/users/{id}", server.AdminHandler.UpdateUser)
			r.Delete("/users/{id}", server.AdminHandler.DeleteUser)
			r.Get("/products", server.AdminHandler.ListProducts)
			r.Put("/products/bulk-update", server.AdminHandler.BulkUpdateProducts)
			r.Put("/products/{id}/status", server.AdminHandler.UpdateProductStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorJSON(w, http.StatusNotFound, "Route not found")
	})

	// 在設置完所有路由後打印路由樹
	if opts.Logger.GetLevel() <= zerolog.DebugLevel {
		_ = chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			opts.Logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
			return nil
		})
	}
	return r
}
