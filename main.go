// main.go - Entry point for the QuickMed backend server

package main // Declares the package name

import ( // Import required packages
	"log"  // Logging
	"time" // CORS preflight cache duration

	"quickmed-backend/config"     // Project config management
	"quickmed-backend/database"   // Database connection and setup
	"quickmed-backend/gemini"     // Gemini AI gateway
	"quickmed-backend/handlers"   // HTTP handlers for API endpoints
	"quickmed-backend/middleware" // Bearer-token authentication

	"github.com/gin-contrib/cors" // CORS allow-list middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (port, DB path, JWT secret, API key, origins)

	if cfg.JWTSecret == "" { // Signing secret is required to run at all
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.Connect(cfg.DBPath) // Connect to the database and migrate
	if err != nil {
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	ai := gemini.New(cfg.GeminiAPIKey) // Gateway for all outbound AI calls

	// STEP 2: Create Gin router and configure routes
	r := setupRouter(handlers.New(db, ai, cfg), cfg)

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil { // A busy port is fatal
		log.Fatal("server error: ", err)
	}
}

// setupRouter builds the canonical route table: /api/auth for account
// routes, /api/gemini for consultations, plus health and a catch-all.
func setupRouter(h *handlers.Handler, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router with logging and panic recovery

	r.Use(cors.New(cors.Config{ // CORS allow-list for the browser frontend
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Account routes
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", h.Register) // Public: user registration
		authRoutes.POST("/login", h.Login)       // Public: user login

		// Protected routes (require a valid bearer token)
		protected := authRoutes.Group("")
		protected.Use(middleware.Auth(h.DB, cfg.JWTSecret))
		{
			protected.GET("/info", h.Info)                // Protected: profile info
			protected.GET("/chat-history", h.ChatHistory) // Protected: saved analyses
		}
	}

	// Consultation routes
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

	r.GET("/", h.Root)          // Status route for platform probes
	r.GET("/health", h.Health)  // Liveness endpoint
	r.NoRoute(h.NotFound)       // Catch-all 404 with a JSON body

	return r
}
