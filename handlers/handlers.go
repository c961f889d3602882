// handlers.go - Shared handler state and the service routes

package handlers // Declares the package name

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quickmed-backend/config" // Project config

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // Database handle
)

// Asker is the AI gateway contract the consultation handlers depend on.
// gemini.Client satisfies it; tests substitute a stub.
type Asker interface {
	Ask(ctx context.Context, prompt, params string) (string, error)
}

// Handler holds the service handles created once at startup and
// injected into every route. No package-level globals, so tests can
// run against isolated databases and a stubbed gateway.
type Handler struct {
	DB  *gorm.DB       // Credential and history store
	AI  Asker          // Gemini gateway
	Cfg *config.Config // Process configuration
}

// New wires a handler set from its dependencies.
func New(db *gorm.DB, ai Asker, cfg *config.Config) *Handler {
	return &Handler{DB: db, AI: ai, Cfg: cfg}
}

// Health - Liveness endpoint, no side effects.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root - Status route for platform health probes hitting /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "QuickMed API is running",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound - Catch-all for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Route %s not found", c.Request.URL.Path)})
}
