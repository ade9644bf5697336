package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskpilot/internal/config"
	"taskpilot/internal/scoring"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"engine": gin.H{
				"default_strategy": cfg.Engine.DefaultStrategy,
				"suggest_limit":    cfg.Engine.SuggestLimit,
			},
		})
	}
}

// GET /strategies
func strategiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":    scoring.DefaultStrategy,
		"strategies": scoring.Strategies(),
	})
}
