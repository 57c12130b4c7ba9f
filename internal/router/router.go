package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/client"
	"github.com/smotired/bulletinator/internal/config"
	"github.com/smotired/bulletinator/internal/handler"
	"github.com/smotired/bulletinator/internal/metrics"
	"github.com/smotired/bulletinator/internal/middleware"
	"github.com/smotired/bulletinator/internal/permission"
	"github.com/smotired/bulletinator/internal/repository"
	"github.com/smotired/bulletinator/internal/service"
)

// Config carries everything the router needs to wire the application
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	FreeItemLimit  int
	RateLimit      config.RateLimitConfig
	MailClient     client.MailClient
	Metrics        *metrics.Metrics
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	itemRepo := repository.NewItemRepository(cfg.DB)
	pinRepo := repository.NewPinRepository(cfg.DB)
	reportRepo := repository.NewReportRepository(cfg.DB)

	permissions := permission.Deps{
		Boards:        boardRepo,
		Accounts:      accountRepo,
		Items:         itemRepo,
		Reports:       reportRepo,
		FreeItemLimit: cfg.FreeItemLimit,
		Metrics:       cfg.Metrics,
	}

	// Services
	accountService := service.NewAccountService(accountRepo, permissions, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, accountRepo, permissions, cfg.MailClient, cfg.Metrics, cfg.Logger)
	itemService := service.NewItemService(itemRepo, pinRepo, permissions, cfg.Metrics, cfg.Logger)
	pinService := service.NewPinService(pinRepo, itemRepo, permissions, cfg.Metrics, cfg.Logger)
	reportService := service.NewReportService(reportRepo, accountRepo, boardRepo, itemRepo, permissions, cfg.Metrics, cfg.Logger)

	// Handlers
	accountHandler := handler.NewAccountHandler(accountService, cfg.Logger)
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	itemHandler := handler.NewItemHandler(itemService, cfg.Logger)
	pinHandler := handler.NewPinHandler(pinService, cfg.Logger)
	reportHandler := handler.NewReportHandler(reportService, cfg.Logger)

	auth := middleware.Auth(cfg.JWTSecret, accountRepo)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret, accountRepo)
	limiter := middleware.NewRateLimiter(cfg.Redis, cfg.RateLimit, cfg.Metrics, cfg.Logger)

	// Health and metrics endpoints stay outside the base path
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB != nil {
			if sqlDB, err := cfg.DB.DB(); err == nil && sqlDB.Ping() == nil {
				c.JSON(http.StatusOK, gin.H{"status": "ready"})
				return
			}
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)

	accounts := api.Group("/accounts")
	{
		accounts.GET("/me", auth, accountHandler.GetCurrent)
		accounts.GET("/username/:username", accountHandler.GetByUsername)
		accounts.GET("", auth, accountHandler.ListAll)
		accounts.PATCH("/:account_id", auth, limiter.Limit("account_update"), accountHandler.Update)
		accounts.DELETE("/:account_id", auth, accountHandler.Delete)
	}

	boards := api.Group("/boards")
	{
		boards.GET("", auth, boardHandler.List)
		boards.GET("/all", auth, boardHandler.ListAll)
		boards.POST("", auth, limiter.Limit("board_create"), boardHandler.Create)

		// Reads go through optional auth so public boards stay reachable
		// without a session.
		boards.GET("/:board_id", optionalAuth, boardHandler.Get)
		boards.PATCH("/:board_id", auth, boardHandler.Update)
		boards.DELETE("/:board_id", auth, boardHandler.Delete)

		boards.GET("/:board_id/editors", optionalAuth, boardHandler.ListEditors)
		boards.POST("/:board_id/editors", auth, limiter.Limit("editor_invite"), boardHandler.AddEditor)
		boards.DELETE("/:board_id/editors/:account_id", auth, boardHandler.RemoveEditor)
		boards.POST("/:board_id/transfer", auth, boardHandler.Transfer)

		boards.GET("/:board_id/items", optionalAuth, itemHandler.List)
		boards.GET("/:board_id/items/:item_id", optionalAuth, itemHandler.Get)
		boards.POST("/:board_id/items", auth, limiter.Limit("item_create"), itemHandler.Create)
		boards.PATCH("/:board_id/items/:item_id", auth, itemHandler.Update)
		boards.DELETE("/:board_id/items/:item_id", auth, itemHandler.Delete)

		boards.POST("/:board_id/items/:item_id/todo", auth, itemHandler.AddTodoItem)
		boards.PATCH("/:board_id/items/:item_id/todo/:todo_id", auth, itemHandler.UpdateTodoItem)
		boards.DELETE("/:board_id/items/:item_id/todo/:todo_id", auth, itemHandler.DeleteTodoItem)

		boards.GET("/:board_id/pins", optionalAuth, pinHandler.List)
		boards.GET("/:board_id/pins/:pin_id", optionalAuth, pinHandler.Get)
		boards.POST("/:board_id/pins", auth, pinHandler.Create)
		boards.PATCH("/:board_id/pins/:pin_id", auth, pinHandler.Update)
		boards.PUT("/:board_id/pins/:pin_id/item/:item_id", auth, pinHandler.Move)
		boards.DELETE("/:board_id/pins/:pin_id", auth, pinHandler.Delete)
		boards.POST("/:board_id/pins/:pin_id/connect", auth, pinHandler.Connect)
		boards.DELETE("/:board_id/pins/:pin_id/connect/:other_id", auth, pinHandler.Disconnect)
	}

	reports := api.Group("/reports", auth)
	{
		reports.GET("", reportHandler.ListAll)
		reports.GET("/submitted", reportHandler.ListSubmitted)
		reports.GET("/assigned", reportHandler.ListAssigned)
		reports.POST("", limiter.Limit("report_create"), reportHandler.Create)
		reports.GET("/:report_id", reportHandler.Get)
		reports.PATCH("/:report_id", reportHandler.UpdateText)
		reports.DELETE("/:report_id", reportHandler.Delete)
		reports.PUT("/:report_id/status", reportHandler.UpdateStatus)
		reports.PUT("/:report_id/assignee", reportHandler.SetAssignee)
		reports.DELETE("/:report_id/assignee", reportHandler.RemoveAssignee)
	}

	return r
}
