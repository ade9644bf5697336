package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"taskpilot/internal/auth"
	"taskpilot/internal/config"
)

func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/taskpilot" or empty for root

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.GET("/strategies", strategiesHandler)

		// Setup: only if no users
		group.POST("/setup", SetupHandler())

		// Auth
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb), LogoutHandler(rdb))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb), MeHandler())

		// --- Scoring engine over ad-hoc batches (open, like the rest of the
		// read-only surface; the engine holds no state worth protecting) ---
		group.POST("/tasks/analyze", AnalyzeTasksHandler(cfg, rdb))
		group.POST("/tasks/suggest", SuggestTasksHandler(cfg, rdb))

		// --- Persisted tasks, scoped to the authenticated user ---
		group.POST("/tasks", auth.AuthMiddleware(cfg, rdb), CreateTaskHandler())
		group.GET("/tasks", auth.AuthMiddleware(cfg, rdb), ListTasksHandler())
		group.GET("/tasks/:id", auth.AuthMiddleware(cfg, rdb), GetTaskHandler())
		group.PUT("/tasks/:id", auth.AuthMiddleware(cfg, rdb), UpdateTaskHandler())
		group.DELETE("/tasks/:id", auth.AuthMiddleware(cfg, rdb), DeleteTaskHandler())
		group.POST("/tasks/prioritize", auth.AuthMiddleware(cfg, rdb), PrioritizeTasksHandler(cfg))
	}
	return r
}
