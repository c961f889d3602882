// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

type User struct { // User struct represents a user in the database
	ID         uint       `gorm:"primaryKey" json:"_id"`          // Unique user ID (primary key)
	Name       string     `gorm:"not null" json:"name"`           // Display name (4-30 chars, validated at the handler)
	Email      string     `gorm:"unique;not null" json:"email"`   // User's email (must be unique, cannot be null)
	Password   string     `gorm:"not null" json:"-"`              // Hashed password (never serialized)
	Role       string     `gorm:"default:'user'" json:"role"`     // User role (user/admin)
	DOB        *time.Time `json:"dob,omitempty"`                  // Date of birth (optional)
	Gender     string     `json:"gender,omitempty"`               // male/female/other (optional)
	Height     *float64   `json:"height,omitempty"`               // Height, must be >= 0 (optional)
	Weight     *float64   `json:"weight,omitempty"`               // Weight, must be >= 0 (optional)
	BloodGroup string     `json:"bloodGroup,omitempty"`           // One of the 8 standard blood groups (optional)
	Allergies  string     `json:"allergies,omitempty"`            // Free-text allergies (optional)
	Conditions string     `json:"conditions,omitempty"`           // Free-text pre-existing conditions (optional)
	CreatedAt  time.Time  `json:"createdAt"`                      // When the account was created

	// Password-reset fields, set only by the (future) reset flow.
	ResetPasswordToken  string     `json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
}
