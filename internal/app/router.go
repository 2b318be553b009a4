package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/api/middleware"
	"kolekta.io/kolekta/internal/config"
)

// defaultDevOrigins serve local frontends when no allowlist is configured.
var defaultDevOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		cors.New(buildCORSConfig(cfg)),
		middleware.RequestID(),
		middleware.ErrorHandler(),
	)

	api := router.Group("/api/v1")
	authed := api.Group("", middleware.JWTAuth(signingKey))
	server.RegisterRoutes(api, authed)
	return router
}

// buildCORSConfig derives CORS policy from server config.
// Wildcard origins are honored only with the explicit unsafe flag, and
// that flag forces credentials off since browsers reject the pairing.
func buildCORSConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Authorization", "Content-Type", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID"}
	c.AllowCredentials = cfg.Server.AllowCredentials

	if cfg.Server.UnsafeAllowAllOrigins {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		origins = append(origins, defaultDevOrigins...)
	}
	c.AllowOrigins = origins
	return c
}
