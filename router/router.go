package router

import (
	"time"

	"academyqa/controllers"
	"academyqa/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter serves the single POST /ask route. Cross-origin requests are
// accepted from any origin.
func SetupRouter(qa *controllers.QAController, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(qa.Recover))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.POST("/ask", qa.AnswerQuestion)

	return r
}
