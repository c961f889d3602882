// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strings" // For splitting the origins list

	"github.com/joho/godotenv" // Loads .env files in development
)

type Config struct { // Config struct holds all configuration values
	Port           string   // Port the HTTP server listens on
	DBPath         string   // Path to the SQLite database file
	JWTSecret      string   // Secret key for signing session tokens
	GeminiAPIKey   string   // API key for the Gemini generative language API
	AllowedOrigins []string // Origins allowed by the CORS policy
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (ignored in production)

	return &Config{
		Port:           getEnv("PORT", "8080"),                     // Get listen port or use default
		DBPath:         getEnv("DB_PATH", "quickmed.db"),           // Get DB path or use default
		JWTSecret:      os.Getenv("JWT_SECRET"),                    // No default; main refuses to start without it
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),                // No default; checked at first gateway call
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")), // Comma-separated allow-list
	}
}

// splitOrigins parses the ALLOWED_ORIGINS env var into a list.
// Falls back to the local dev origins used by the frontend.
func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:8080"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
