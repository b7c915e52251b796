package router

import (
	"io/fs"
	"net/http"

	"burnout/api"
	"burnout/config"
	_ "burnout/docs"
	"burnout/middleware"
	"burnout/service"
	"burnout/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, predictor *service.Predictor) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// 嵌入的静态文件 - 评估面板
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		v1.POST("/auth/login", middleware.LoginRateLimit(5, cfg.RateLimit.Window), authHandler.Login)

		// 启用登录保护时需要 JWT
		protected := v1.Group("")
		protected.Use(middleware.OptionalJWTAuth(cfg.Auth.Enabled))
		{
			predictionHandler := api.NewPredictionHandler(predictor)
			limit := middleware.PredictRateLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
			protected.POST("/predict", limit, predictionHandler.Predict)
			protected.POST("/predictions", limit, predictionHandler.Submit)

			historyHandler := api.NewHistoryHandler(predictor)
			protected.GET("/history", historyHandler.List)
			protected.GET("/history/summary", historyHandler.Summary)

			exportHandler := api.NewExportHandler(predictor)
			export := protected.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
