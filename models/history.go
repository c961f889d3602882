// history.go - Defines the History model for saved symptom analyses

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

// Value serializes the list for the database.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores the list from its stored JSON form.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringList")
	}
}

type History struct { // One completed symptom analysis and its AI results
	ID           uint       `gorm:"primaryKey" json:"_id"`         // Unique record ID
	UserID       uint       `gorm:"not null;index" json:"userId"`  // Owning user (no FK constraint; users are never deleted)
	Date         time.Time  `json:"date"`                          // When the analysis was saved
	Symptoms     StringList `gorm:"type:text" json:"symptoms"`     // Ordered symptom list
	Diagnosis    string     `gorm:"default:''" json:"diagnosis"`   // Cause analysis text
	Treatment    string     `gorm:"default:''" json:"treatment"`   // Treatment steps text
	Medications  string     `gorm:"default:''" json:"medications"` // Medication suggestions text
	HomeRemedies string     `gorm:"default:''" json:"homeRemedies"` // Home remedies text
	FileAnalysis string     `gorm:"default:''" json:"fileAnalysis"` // Report summary text (optional)
}
