package router

import (
	"time"

	"exploraneiva/internal/config"
	"exploraneiva/internal/form"
	"exploraneiva/internal/handler"
	"exploraneiva/internal/infra"
	"exploraneiva/internal/middleware"
	"exploraneiva/internal/repository"
	"exploraneiva/internal/service"
	"exploraneiva/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Deps are the infrastructure pieces built by the composition root.
// Redis and Dispatcher are nil when Redis is not configured.
type Deps struct {
	Gateway     *infra.Gateway
	Documents   *infra.InvoiceGenerator
	Preferences repository.PreferenceRepository
	Redis       *redis.Client
	Dispatcher  *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Form/View ← Service ← Gateway ← remote API
func New(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	api := deps.Gateway
	clientSvc := service.NewClientService(api)
	siteSvc := service.NewTouristSiteService(api)
	reservationSvc := service.NewReservationService(api)
	invoiceSvc := service.NewInvoiceService(api)
	authSvc := service.NewAuthService(api, cfg.JWTSecret, cfg.JWTExpirationHours)
	dashboardSvc := service.NewDashboardService(clientSvc, siteSvc, reservationSvc, invoiceSvc)

	validator := form.NewValidator(nil)

	// a nil *Dispatcher must not become a non-nil interface
	var mailer form.InvoiceMailer
	if deps.Dispatcher != nil {
		mailer = deps.Dispatcher
	}

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, deps.Preferences, validator)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	clientesH := handler.NewClientesHandler(clientSvc, reservationSvc, validator)
	sitiosH := handler.NewSitiosHandler(siteSvc, reservationSvc, validator)
	reservacionesH := handler.NewReservacionesHandler(reservationSvc, clientSvc, siteSvc, invoiceSvc, validator)
	facturasH := handler.NewFacturasHandler(invoiceSvc, reservationSvc, deps.Documents, mailer, validator)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(api, deps.Redis))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/welcome", handler.Welcome)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.GET("/remembered", authH.Remembered)
		auth.POST("/signup", middleware.LoginRateLimiter(), authH.Signup)
		auth.POST("/verify-email", authH.VerifyEmail)
		auth.POST("/forgot-password", middleware.LoginRateLimiter(), authH.ForgotPassword)
	}

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.GET("/dashboard", dashboardH.Resumen)

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Crear)
			clientes.GET("/nuevo", clientesH.Nuevo)
			clientes.GET("/:id", clientesH.Editar)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
			clientes.GET("/:id/reservaciones", clientesH.Reservaciones)
		}

		sitios := v1.Group("/sitios")
		{
			sitios.GET("", sitiosH.Listar)
			sitios.POST("", sitiosH.Crear)
			sitios.GET("/nuevo", sitiosH.Nuevo)
			sitios.GET("/:id", sitiosH.Editar)
			sitios.PUT("/:id", sitiosH.Actualizar)
			sitios.DELETE("/:id", sitiosH.Eliminar)
			sitios.GET("/:id/reservaciones", sitiosH.Reservaciones)
		}

		reservaciones := v1.Group("/reservaciones")
		{
			reservaciones.GET("", reservacionesH.Listar)
			reservaciones.POST("", reservacionesH.Crear)
			reservaciones.GET("/nuevo", reservacionesH.Nuevo)
			reservaciones.GET("/:id", reservacionesH.Editar)
			reservaciones.PUT("/:id", reservacionesH.Actualizar)
			reservaciones.DELETE("/:id", reservacionesH.Eliminar)
			reservaciones.GET("/:id/facturas", reservacionesH.Facturas)
		}

		facturas := v1.Group("/facturas")
		{
			facturas.GET("", facturasH.Listar)
			facturas.POST("", facturasH.Crear)
			facturas.GET("/nuevo", facturasH.Nuevo)
			facturas.GET("/pdf/:file", facturasH.DescargarPDF)
			facturas.GET("/:id", facturasH.Editar)
			facturas.PUT("/:id", facturasH.Actualizar)
			facturas.DELETE("/:id", facturasH.Eliminar)
			facturas.GET("/:id/documento", facturasH.Documento)
		}

		if deps.Redis != nil {
			v1.GET("/correos/fallidos", handler.CorreosFallidos(deps.Redis))
		}
	}

	// Swagger UI: only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
