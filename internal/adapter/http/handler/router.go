package handler

import (
	"time"

	"github.com/plnalaca/pera/internal/adapter/http/middleware"
	"github.com/plnalaca/pera/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	UserSvc        ports.UserService
	LessonSvc      ports.LessonService
	StoreHealth    ports.StoreHealth
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// Route paths are part of the frontend contract and must not change.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Only the configured frontend origins may call the API; cookies
	// are allowed for those origins.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", HealthCheck(deps.StoreHealth))

	userHandler := NewUserHandler(deps.UserSvc)
	r.POST("/create_user", userHandler.CreateUser)
	r.GET("/check_user", userHandler.CheckUser)

	lessonHandler := NewLessonHandler(deps.LessonSvc)
	r.GET("/getCompletedLessons", lessonHandler.GetCompletedLessons)

	return r
}
