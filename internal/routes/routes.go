package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/config"
	"github.com/BruksfildServices01/food-ordering/internal/handlers"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	infraRepo "github.com/BruksfildServices01/food-ordering/internal/infra/repository"
	"github.com/BruksfildServices01/food-ordering/internal/metrics"
	"github.com/BruksfildServices01/food-ordering/internal/middleware"
	"github.com/BruksfildServices01/food-ordering/internal/realtime"
	"github.com/BruksfildServices01/food-ordering/internal/storage"
	ucAccount "github.com/BruksfildServices01/food-ordering/internal/usecase/account"
	ucCatalog "github.com/BruksfildServices01/food-ordering/internal/usecase/catalog"
	ucFeedback "github.com/BruksfildServices01/food-ordering/internal/usecase/feedback"
	ucOrder "github.com/BruksfildServices01/food-ordering/internal/usecase/order"
)

// Deps are the process-wide collaborators built once at startup.
// Checkout may be nil when online payments are not configured.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *slog.Logger
	Sessions auth.SessionStore
	Audit    *audit.Dispatcher
	Hub      *realtime.Hub
	Images   *storage.Images
	Checkout ucOrder.CheckoutProvider
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	loginLimit, err := middleware.RateLimit(cfg.LoginRate)
	if err != nil {
		return err
	}

	// ======================================================
	// INFRA
	// ======================================================
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewResolver(tokens, d.Sessions, cfg.SessionCookieName)

	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	accounts := ucAccount.NewService(accountRepo, tokens, d.Sessions)

	categories := ucCatalog.NewCategories(catalogRepo, d.Audit)
	menuItems := ucCatalog.NewMenuItems(catalogRepo, d.Audit)

	placeOrderUC := ucOrder.NewPlaceOrder(orderRepo, d.Hub, d.Checkout, cfg.Timezone)
	listUserOrdersUC := ucOrder.NewListUserOrders(orderRepo)
	listAllOrdersUC := ucOrder.NewListAllOrders(orderRepo)
	orderDetailsUC := ucOrder.NewGetOrderDetails(orderRepo)
	updateStatusUC := ucOrder.NewUpdateOrderStatus(orderRepo, d.Audit, d.Hub)

	submitFeedbackUC := ucFeedback.NewSubmitFeedback(feedbackRepo)
	moderateFeedbackUC := ucFeedback.NewModerateFeedback(feedbackRepo, d.Audit)
	deleteFeedbackUC := ucFeedback.NewDeleteFeedback(feedbackRepo, d.Audit)
	listFeedbackUC := ucFeedback.NewListFeedback(feedbackRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts, resolver, handlers.SessionCookie{
		Name:   cfg.SessionCookieName,
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionSecure,
	})
	meHandler := handlers.NewMeHandler(accounts, d.Images)
	publicHandler := handlers.NewPublicHandler(categories, menuItems)
	menuHandler := handlers.NewMenuHandler(categories, menuItems, d.Images)

	orderHandler := handlers.NewOrderHandler(
		placeOrderUC,
		listUserOrdersUC,
		listAllOrdersUC,
		orderDetailsUC,
		updateStatusUC,
		d.Hub,
	)

	feedbackHandler := handlers.NewFeedbackHandler(
		submitFeedbackUC,
		moderateFeedbackUC,
		deleteFeedbackUC,
		listFeedbackUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))
	healthHandler := handlers.NewHealthHandler(d.DB, d.Sessions)

	requireLogin := middleware.RequireLogin(resolver)
	requireUser := middleware.RequireUser(resolver)
	requireAdmin := middleware.RequireAdmin(resolver)
	requireSuperAdmin := middleware.RequireSuperAdmin(resolver)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.S3Bucket == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound, "not_found", "Endpoint not found")
	})

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/session", authHandler.Session)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		user := api.Group("/user")
		{
			user.POST("/register", loginLimit, authHandler.RegisterUser)
			user.POST("/login", loginLimit, authHandler.LoginUser)
			user.POST("/logout", authHandler.Logout)

			user.GET("/profile", requireUser, meHandler.UserProfile)
			user.PUT("/profile", requireUser, meHandler.UpdateUserProfile)
			user.POST("/profile/image", requireUser, meHandler.UploadUserImage)
			user.POST("/profile/change-password", requireUser, meHandler.ChangePassword)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.POST("/register", requireSuperAdmin, authHandler.RegisterAdmin)
			admin.POST("/login", loginLimit, authHandler.LoginAdmin)
			admin.POST("/logout", authHandler.Logout)

			admin.GET("/profile", requireAdmin, meHandler.AdminProfile)
			admin.PUT("/profile", requireAdmin, meHandler.UpdateAdminProfile)
			admin.POST("/profile/change-password", requireAdmin, meHandler.ChangePassword)

			admin.GET("/audit-logs", requireAdmin, auditLogsHandler.List)

			menu := admin.Group("/menu", requireAdmin)
			{
				menu.GET("/categories", menuHandler.ListCategories)
				menu.POST("/categories", menuHandler.CreateCategory)
				menu.GET("/categories/:id", menuHandler.GetCategory)
				menu.PUT("/categories/:id", menuHandler.UpdateCategory)
				menu.DELETE("/categories/:id", menuHandler.DeleteCategory)
				menu.POST("/categories/:id/image", menuHandler.UploadCategoryImage)

				menu.GET("/items", menuHandler.ListItems)
				menu.POST("/items", menuHandler.CreateItem)
				menu.GET("/items/:id", menuHandler.GetItem)
				menu.PUT("/items/:id", menuHandler.UpdateItem)
				menu.DELETE("/items/:id", menuHandler.DeleteItem)
				menu.POST("/items/:id/image", menuHandler.UploadItemImage)
			}
		}

		// ------------------------------
		// ORDERS
		// ------------------------------
		order := api.Group("/order")
		{
			order.GET("/categories", publicHandler.Categories)
			order.GET("/menu", publicHandler.Menu)
			order.GET("/menu/:id", publicHandler.MenuItem)

			order.POST("/place", requireUser, orderHandler.Place)
			order.GET("/my-orders", requireUser, orderHandler.MyOrders)
			order.GET("/order/:id", requireLogin, orderHandler.Get)

			order.GET("/all", requireAdmin, orderHandler.All)
			order.PUT("/update-status/:id", requireAdmin, orderHandler.UpdateStatus)
			order.GET("/live", requireAdmin, orderHandler.Live)
		}

		// ------------------------------
		// FEEDBACK
		// ------------------------------
		feedback := api.Group("/feedback")
		{
			feedback.GET("/menu-item/:id", feedbackHandler.ForMenuItem)

			feedback.POST("/submit", requireUser, feedbackHandler.Submit)
			feedback.GET("/my-feedback", requireUser, feedbackHandler.Mine)
			feedback.GET("/eligible-orders", requireUser, feedbackHandler.EligibleOrders)

			feedback.GET("/all", requireAdmin, feedbackHandler.All)
			feedback.PUT("/approve/:id", requireAdmin, feedbackHandler.Approve)
			feedback.DELETE("/delete/:id", requireAdmin, feedbackHandler.Delete)
		}
	}

	return nil
}
