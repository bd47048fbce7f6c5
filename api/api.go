package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sentimentfolio/internal/app"
	"sentimentfolio/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                *sql.DB
	CycleHandler      app.CycleHandler
	EvaluationHandler app.EvaluationHandler
	HarvestHandler    app.HarvestHandler
	ReportHandler     app.ReportHandler
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to sentimentfolio"})
	})
	router.POST("/cycle", m.cycle)
	router.POST("/evaluate", m.evaluate)
	router.POST("/harvest", m.harvest)
	router.GET("/report", m.report)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestContext gives every resolver a context carrying a logger, so the
// whole call tree logs through the same sink.
func requestContext(ctx *gin.Context) context.Context {
	return context.WithValue(ctx, logger.ContextKey, logger.New())
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	logger.Info(
		"%s %s -> %d (%s)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start),
	)
}
