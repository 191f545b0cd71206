package attendance

import (
	"github.com/saurav-commits/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, logger *zap.Logger) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("", h.GetAll)
		attendance.GET("/summary/:employee_id", h.Summary)

		attendance.POST("",
			middleware.RateLimitByIP(5, 10),
			h.Mark,
		)
	}
}
