package employee

import (
	"github.com/saurav-commits/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
