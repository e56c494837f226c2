package api

import (
	_ "embed"
	"net/http"

	"github.com/Domenick1991/flighttime/internal/requestid"
	"github.com/Domenick1991/flighttime/internal/service/flights"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed docs/openapi.json
var openAPIDoc []byte

type RouterOptions struct {
	Swagger bool
}

// NewRouter wires the HTTP surface. Every route accepts cross-origin
// requests from any origin.
func NewRouter(service flights.FlightUseCase, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestid.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestid.Header},
		ExposeHeaders:   []string{requestid.Header},
	}))

	NewFlightHandler(service).Register(&router.RouterGroup)

	router.GET("/healthz", health)
	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDoc)
	})
	if opts.Swagger {
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))
	}

	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
