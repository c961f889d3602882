// helpers_test.go - Shared fixtures for handler tests

package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"quickmed-backend/config"
	"quickmed-backend/database"
	"quickmed-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// stubAI replaces the Gemini gateway in tests. It records how many
// calls reached it so upload guard tests can assert zero.
type stubAI struct {
	reply string
	err   error
	calls int
}

func (s *stubAI) Ask(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// setupTest builds a router over a fresh test database and the given
// gateway stub, mirroring the route table from main.
func setupTest(t *testing.T, ai Asker) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("test db: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	h := New(db, ai, cfg)

	r := gin.New()
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)

		protected := authRoutes.Group("")
		protected.Use(middleware.Auth(db, cfg.JWTSecret))
		{
			protected.GET("/info", h.Info)
			protected.GET("/chat-history", h.ChatHistory)
		}
	}
	consult := r.Group("/api/gemini")
	{
		consult.POST("/cause", h.Cause)
		consult.POST("/treatment", h.Treatment)
		consult.POST("/medication", h.Medication)
		consult.POST("/home-remedies", h.HomeRemedies)
		consult.POST("/doctor-recommendation", h.DoctorRecommendation)
		consult.POST("/upload", h.Upload)
		consult.POST("/save-history", h.SaveHistory)
	}
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.NoRoute(h.NotFound)

	return r, db, cfg
}
