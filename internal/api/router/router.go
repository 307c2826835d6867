package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timesheet/backend/config"
	"timesheet/backend/internal/api/handler"
	"timesheet/backend/internal/api/middleware"
	"timesheet/backend/internal/model"
	"timesheet/backend/pkg/jwt"
	"timesheet/backend/pkg/response"
)

// Deps 路由依赖的外部组件，Blacklist / Limiter 未启用 Redis 时为 nil
type Deps struct {
	JWT       *jwt.Manager
	Blacklist middleware.Blacklist
	Limiter   middleware.Limiter
	Logger    *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, deps Deps) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok", "store": cfg.Store.Driver})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(deps.Limiter, cfg.Server.RateLimit.LoginLimit, cfg.Server.RateLimit.LoginWindow, deps.Logger),
				h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(deps.JWT, deps.Blacklist, deps.Logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 工时记录（员工仅本人，管理员可指定 user_id，Service 层鉴权）
			entries := authorized.Group("/time-entries")
			{
				entries.GET("", h.TimeEntry.List)
				entries.GET("/:id", h.TimeEntry.Get)
				entries.POST("", h.TimeEntry.Create)
				entries.PUT("/:id", h.TimeEntry.Update)
				entries.DELETE("/:id", h.TimeEntry.Delete)
			}

			// 工时表视图
			sheet := authorized.Group("/timesheet")
			{
				sheet.GET("", h.Timesheet.View)
				sheet.GET("/summaries", h.Timesheet.Summaries)
			}

			// 导出
			authorized.GET("/export/timesheet", h.Export.ExportTimesheet)

			// 用户模块（雇主看板）
			users := authorized.Group("/users", middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.GetByID)
			}
		}
	}

	return r
}
