package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealdb-explorer/backend/internal/api"
	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/service"
)

// Options carries the dependencies the router wires together
type Options struct {
	Logger         logrus.FieldLogger
	AllowedOrigins []string
	Meals          service.IMealService
	Matcher        service.IMatcherService
	// RateLimiter throttles ingredient matching; nil disables it.
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.ErrorHandler(),
		middleware.Metrics(),
		middleware.CORS(opts.AllowedOrigins),
	)
	router.NoRoute(middleware.NotFound())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api.SetupAPI(router, opts.Meals, opts.Matcher, opts.RateLimiter)

	return router
}
