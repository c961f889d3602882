// user.go - Handles user registration, login, profile info and history

package handlers // Declares the package name

import ( // Import required packages
	"log"      // Server-side error logging
	"net/http" // HTTP status codes
	"time"     // For date-of-birth parsing

	"quickmed-backend/auth"       // Token service
	"quickmed-backend/middleware" // Context key for the authenticated user
	"quickmed-backend/models"     // User and History models

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// historyLimit - Newest-first cap on returned history records.
const historyLimit = 10

type RegisterInput struct { // Struct for registration input
	Name       string   `json:"name" binding:"required,min=4,max=30"`                          // Display name (required, 4-30 chars)
	Email      string   `json:"email" binding:"required,email"`                                // Email (required, valid syntax)
	Password   string   `json:"password" binding:"required,min=8"`                             // Raw password (required, min 8 chars)
	DOB        string   `json:"dob" binding:"omitempty"`                                       // Date of birth, "2006-01-02" (optional)
	Gender     string   `json:"gender" binding:"omitempty,oneof=male female other"`            // Gender enum (optional)
	Height     *float64 `json:"height" binding:"omitempty,gte=0"`                              // Height >= 0 (optional)
	Weight     *float64 `json:"weight" binding:"omitempty,gte=0"`                              // Weight >= 0 (optional)
	BloodGroup string   `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"` // Blood group enum (optional)
	Allergies  string   `json:"allergies"`                                                     // Free-text allergies (optional)
	Conditions string   `json:"conditions"`                                                    // Free-text conditions (optional)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"` // Email (required)
	Password string `json:"password" binding:"required"`    // Password (required)
}

// Register - Handler for user registration.
// Creates the account and immediately issues a session token.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid data format",
			"code":    "VALIDATION_ERROR",
		})
		return
	}

	// STEP 1: Reject duplicate emails with a stable code the frontend
	// keys off.
	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "User with this email already exists",
			"code":    "EMAIL_EXISTS",
		})
		return
	}

	// STEP 2: Parse the optional date of birth
	dob, ok := parseDOB(input.DOB)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid data format",
			"code":    "VALIDATION_ERROR",
		})
		return
	}

	// STEP 3: Hash the password and create the user
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "code": "SERVER_ERROR"})
		return
	}
	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hash),
		DOB:        dob,
		Gender:     input.Gender,
		Height:     input.Height,
		Weight:     input.Weight,
		BloodGroup: input.BloodGroup,
		Allergies:  input.Allergies,
		Conditions: input.Conditions,
	}
	if err := h.DB.Create(&user).Error; err != nil { // Save user to DB
		log.Println("Registration error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "code": "SERVER_ERROR"})
		return
	}

	// STEP 4: Issue the session token
	token, err := auth.Issue(user.Email, h.Cfg.JWTSecret)
	if err != nil { // Missing secret is a deployment error, logged server-side only
		log.Println("Token issue error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error", "code": "CONFIG_ERROR"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"_id":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// Login - Handler for user login.
// Unknown email and wrong password get the same response so the two
// cases cannot be told apart.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required",
			"status":  "error",
		})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil { // Find user by email
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password", "status": "error"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password", "status": "error"})
		return
	}

	token, err := auth.Issue(user.Email, h.Cfg.JWTSecret)
	if err != nil {
		log.Println("Token issue error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error", "status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"_id":     user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"token":   token,
	})
}

// Info - Returns the authenticated user's profile (never the password).
// Runs behind the auth middleware.
func (h *Handler) Info(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(models.User) // Set by the auth middleware

	c.JSON(http.StatusOK, gin.H{
		"_id":        user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"dob":        user.DOB,
		"gender":     user.Gender,
		"height":     user.Height,
		"weight":     user.Weight,
		"bloodGroup": user.BloodGroup,
		"createdAt":  user.CreatedAt,
	})
}

// ChatHistory - Returns the user's saved analyses, newest first,
// capped at 10 records. Runs behind the auth middleware.
func (h *Handler) ChatHistory(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(models.User)

	var records []models.History
	err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC"). // id breaks same-timestamp ties
		Limit(historyLimit).
		Find(&records).Error
	if err != nil {
		log.Println("Error fetching history:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// parseDOB accepts the date formats the frontend sends ("2006-01-02"
// or full RFC3339). An empty string is fine; anything else is not.
func parseDOB(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}
