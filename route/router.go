package route

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customer-service-agent/api"
	"customer-service-agent/dao"
	"customer-service-agent/service"
)

// Deps collects everything the routes need.
type Deps struct {
	Agent    *service.Agent
	Orders   *service.OrderService
	Products *service.ProductService
	Store    *dao.Store
	Cache    *dao.SessionCache
	Secret   string
	Log      *zap.SugaredLogger
}

func Register(r *gin.Engine, d Deps) {
	r.Use(api.RequestLogger(d.Log))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Automated Customer Service Agent API",
			"version": "1.0.0",
			"status":  "operational",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	apiGroup := r.Group("/api")
	apiGroup.Use(api.RequireAuth(d.Secret, d.Log))
	{
		apiGroup.POST("/chat", api.ChatHandler(d.Agent))
		apiGroup.GET("/chat/history/:session_id", api.HistoryHandler(d.Cache))
		apiGroup.GET("/orders/:order_id", api.OrderStatusHandler(d.Orders))
		apiGroup.GET("/products", api.ProductSearchHandler(d.Products))
		apiGroup.POST("/returns", api.ReturnRequestHandler(d.Orders))
		apiGroup.GET("/faqs", api.FAQListHandler(d.Store))
		apiGroup.GET("/analytics", api.AnalyticsHandler(d.Store))
	}
}
