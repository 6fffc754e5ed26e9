package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lumina-app/lumina-engine/docs"
	"github.com/lumina-app/lumina-engine/internal/adapters/handler/http/middleware"
)

// RouterDependencies carries everything the router mounts. DB and Redis
// are nil when the corresponding storage driver is not in use; the health
// endpoint and the rate limiter adapt to what is present.
type RouterDependencies struct {
	MoodHandler       *MoodHandler
	TaskHandler       *TaskHandler
	MedicationHandler *MedicationHandler
	StatsHandler      *StatsHandler
	SettingsHandler   *SettingsHandler
	AIHandler         *AIHandler
	DB                *sqlx.DB
	Redis             *redis.Client
	StartTime         time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiter(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		statusCode := 200
		body := gin.H{
			"status": "ok",
			"uptime": time.Since(deps.StartTime).String(),
		}

		if deps.DB != nil {
			body["database"] = "connected"
			if err := deps.DB.Ping(); err != nil {
				body["database"] = "unreachable"
				statusCode = 503
			}
		}

		if deps.Redis != nil {
			body["redis"] = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				body["redis"] = "unreachable"
				statusCode = 503
			}
		}

		if statusCode != 200 {
			body["status"] = "error"
		}
		c.JSON(statusCode, body)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.AIHandler != nil {
		deps.AIHandler.RegisterProxy(router)
	}

	apiV1 := router.Group("/api/v1")
	{
		deps.MoodHandler.RegisterRoutes(apiV1)
		deps.TaskHandler.RegisterRoutes(apiV1)
		deps.MedicationHandler.RegisterRoutes(apiV1)
		deps.StatsHandler.RegisterRoutes(apiV1)
		deps.SettingsHandler.RegisterRoutes(apiV1)
		if deps.AIHandler != nil {
			deps.AIHandler.RegisterRoutes(apiV1)
		}
	}

	return router
}
