package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andrisetiawan/tokokain-api/internal/config"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/handler"
	"github.com/andrisetiawan/tokokain-api/internal/presentation/http/middleware"
	"github.com/andrisetiawan/tokokain-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth            *handler.AuthHandler
	User            *handler.UserHandler
	Pelanggan       *handler.PelangganHandler
	Supplier        *handler.SupplierHandler
	Barang          *handler.BarangHandler
	TransaksiKeluar *handler.TransaksiKeluarHandler
	TransaksiMasuk  *handler.TransaksiMasukHandler
	Oprasional      *handler.OprasionalHandler
	Profile         *handler.ProfileHandler
	Dashboard       *handler.DashboardHandler
	Notification    *handler.NotificationHandler
	Report          *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/account routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Store profile
	protected.GET("/profile", h.Profile.Get)
	protected.PUT("/profile", h.Profile.Update)

	// Master data
	registerPelangganRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerBarangRoutes(protected, h)

	// Transactions
	registerTransaksiKeluarRoutes(protected, h)
	registerTransaksiMasukRoutes(protected, h)

	// Operational expenses
	registerOprasionalRoutes(protected, h)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// WhatsApp gateway
	registerWhatsAppRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerPelangganRoutes(protected *gin.RouterGroup, h *Handlers) {
	pelanggan := protected.Group("/pelanggan")
	{
		pelanggan.GET("", h.Pelanggan.List)
		pelanggan.GET("/all", h.Pelanggan.ListAll)
		pelanggan.POST("", h.Pelanggan.Create)
		pelanggan.GET("/:id", h.Pelanggan.Get)
		pelanggan.PUT("/:id", h.Pelanggan.Update)
		pelanggan.DELETE("/:id", h.Pelanggan.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	supplier := protected.Group("/supplier")
	{
		supplier.GET("", h.Supplier.List)
		supplier.GET("/all", h.Supplier.ListAll)
		supplier.POST("", h.Supplier.Create)
		supplier.GET("/:id", h.Supplier.Get)
		supplier.PUT("/:id", h.Supplier.Update)
		supplier.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerBarangRoutes(protected *gin.RouterGroup, h *Handlers) {
	barang := protected.Group("/barang")
	{
		barang.GET("", h.Barang.List)
		barang.GET("/all", h.Barang.ListAll)
		barang.GET("/stockBarang", h.Barang.StockSummary)
		barang.POST("", h.Barang.Create)
		barang.GET("/:id", h.Barang.Get)
		barang.PUT("/:id", h.Barang.Update)
		barang.DELETE("/:id", h.Barang.Delete)
	}
}

func registerTransaksiKeluarRoutes(protected *gin.RouterGroup, h *Handlers) {
	keluar := protected.Group("/transaksi-keluar")
	{
		keluar.GET("", h.TransaksiKeluar.List)
		keluar.POST("", h.TransaksiKeluar.Create)
		keluar.GET("/:id", h.TransaksiKeluar.Get)
		keluar.PUT("/:id", h.TransaksiKeluar.Update)
		keluar.DELETE("/:id", h.TransaksiKeluar.Delete)
		keluar.PUT("/:id/retur/:detailId", h.TransaksiKeluar.Retur)
	}

	// Installment payment recording lives on its own path
	protected.PUT("/berjangka-keluar-cicil/:id", h.TransaksiKeluar.UpdateCicilan)
}

func registerTransaksiMasukRoutes(protected *gin.RouterGroup, h *Handlers) {
	masuk := protected.Group("/transaksi-masuk")
	{
		masuk.GET("", h.TransaksiMasuk.List)
		masuk.POST("", h.TransaksiMasuk.Create)
		masuk.GET("/:id", h.TransaksiMasuk.Get)
		masuk.PUT("/:id", h.TransaksiMasuk.Update)
		masuk.DELETE("/:id", h.TransaksiMasuk.Delete)
		masuk.PUT("/:id/retur/:detailId", h.TransaksiMasuk.Retur)
	}

	protected.PUT("/berjangka-masuk-cicil/:id", h.TransaksiMasuk.UpdateCicilan)
}

func registerOprasionalRoutes(protected *gin.RouterGroup, h *Handlers) {
	oprasional := protected.Group("/oprasional")
	{
		oprasional.GET("", h.Oprasional.List)
		oprasional.POST("", h.Oprasional.Create)
		oprasional.GET("/:id", h.Oprasional.Get)
		oprasional.PUT("/:id", h.Oprasional.Update)
		oprasional.DELETE("/:id", h.Oprasional.Delete)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/get-saldo", h.Dashboard.GetSaldo)
		dashboard.GET("/get-transaksi-penjualan", h.Dashboard.GetTransaksiPenjualan)
		dashboard.GET("/get-transaksi-pembelian", h.Dashboard.GetTransaksiPembelian)
		dashboard.GET("/get-total-stok-barang", h.Dashboard.GetTotalStokBarang)
		dashboard.GET("/get-paling-laku", h.Dashboard.GetPalingLaku)
		dashboard.GET("/getChartPenjualan", h.Dashboard.GetChartPenjualan)
		dashboard.GET("/getJatuhTempoPiutang", h.Dashboard.GetJatuhTempoPiutang)
		dashboard.GET("/getDataPelanggan", h.Dashboard.GetDataPelanggan)
		dashboard.GET("/getDataOprasional", h.Dashboard.GetDataOprasional)
	}
}

func registerWhatsAppRoutes(protected *gin.RouterGroup, h *Handlers) {
	whatsapp := protected.Group("/whatsapp")
	{
		whatsapp.GET("/status", h.Notification.Status)
		whatsapp.GET("/qr", h.Notification.QR)
		whatsapp.POST("/send-file", h.Notification.SendInvoice)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/penjualan", h.Report.ExportPenjualan)
		reports.GET("/pembelian", h.Report.ExportPembelian)
		reports.GET("/stok", h.Report.ExportStok)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireJabatan("admin", "owner"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
