// consult.go - Consultation endpoints backed by the Gemini gateway
//
// Each handler is a thin transform: validate the symptom list, build a
// deterministic prompt from a fixed template, make one gateway call,
// and return the completion as responseText. The frontend issues the
// four core calls (cause, treatment, medication, home-remedies)
// concurrently and aggregates client-side; nothing here holds state
// across requests.

package handlers

import (
	"fmt"       // Prompt formatting
	"log"       // Server-side error logging
	"net/http"  // HTTP status codes
	"regexp"    // Medication separator post-processing
	"strings"   // Symptom joining, slug normalization
	"time"      // History record dates

	"quickmed-backend/gemini" // Prompt templates and specialty vocabulary
	"quickmed-backend/models" // History model

	"github.com/gin-gonic/gin" // Gin web framework
)

// maxUploadSize - Upload cap, enforced before the file reaches the gateway.
const maxUploadSize = 5 * 1024 * 1024 // 5MB

// allowedUploadTypes - Accepted MIME types for report uploads.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// medicationMarker matches the "Medication N:" block headers the
// medication prompt asks for.
var medicationMarker = regexp.MustCompile(`Medication \d+:`)

type SymptomsInput struct { // Struct for symptom-based requests
	Symptoms []string `json:"symptoms"` // Ordered symptom list
}

// bindSymptoms parses the request body and rejects an empty symptom
// list. Returns the joined list ready for prompt building.
func bindSymptoms(c *gin.Context) (string, bool) {
	var input SymptomsInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Symptoms are required"})
		return "", false
	}
	return strings.Join(input.Symptoms, ", "), true
}

// Cause - Most likely cause plus a short rationale.
func (h *Handler) Cause(c *gin.Context) {
	joined, ok := bindSymptoms(c)
	if !ok {
		return
	}

	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.CausePrompt, joined), joined)
	if err != nil {
		log.Println("Cause analysis error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze cause"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responseText": text, "message": "Success"})
}

// Treatment - Exactly 3 bulleted treatment steps.
func (h *Handler) Treatment(c *gin.Context) {
	joined, ok := bindSymptoms(c)
	if !ok {
		return
	}

	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.TreatmentPrompt, joined), joined)
	if err != nil {
		log.Println("Treatment analysis error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze treatment options"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responseText": text, "message": "Treatment analysis completed successfully"})
}

// Medication - Name/Power/Dose/Duration blocks for 2-3 medications.
// A <br> separator is inserted before each "Medication N:" marker so
// the frontend can split the blocks.
func (h *Handler) Medication(c *gin.Context) {
	joined, ok := bindSymptoms(c)
	if !ok {
		return
	}

	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.MedicationPrompt, joined), joined)
	if err != nil {
		log.Println("Medication error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get medication suggestions"})
		return
	}

	formatted := medicationMarker.ReplaceAllString(text, "<br>$0")

	c.JSON(http.StatusOK, gin.H{"responseText": formatted, "message": "Success"})
}

// HomeRemedies - Exactly 2 "Remedy | Instructions" lines.
func (h *Handler) HomeRemedies(c *gin.Context) {
	joined, ok := bindSymptoms(c)
	if !ok {
		return
	}

	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.HomeRemediesPrompt, joined), joined)
	if err != nil {
		log.Println("Home remedies error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze home remedies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responseText": text, "message": "Home remedies analysis completed successfully"})
}

// DoctorRecommendation - One specialist slug from the closed
// 13-specialty vocabulary. The model's reply is normalized and
// validated server-side; anything out of vocabulary falls back to the
// default rather than leaking free text to the referral link builder.
func (h *Handler) DoctorRecommendation(c *gin.Context) {
	joined, ok := bindSymptoms(c)
	if !ok {
		return
	}

	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.DoctorPrompt, joined), joined)
	if err != nil {
		log.Println("Doctor recommendation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get doctor recommendation"})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(text))
	if !gemini.IsSpecialty(slug) {
		slug = gemini.DefaultSpecialty
	}

	c.JSON(http.StatusOK, gin.H{"responseText": slug, "message": "Success"})
}

// Upload - Accepts one report file (JPEG/PNG/PDF, max 5MB) and returns
// an AI summary of its extracted text.
//
// Content extraction is a deliberate stub: the "extracted text" is a
// filename echo, not real OCR or PDF parsing. The summary prompt is
// still exercised end to end so the capability boundary is only the
// extraction step.
func (h *Handler) Upload(c *gin.Context) {
	// STEP 1: Pull the file out of the multipart form
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file received"})
		return
	}

	// STEP 2: Size and type checks, before anything reaches the gateway
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File too large. Maximum size is 5MB."})
		return
	}
	mimeType := file.Header.Get("Content-Type")
	if !allowedUploadTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid file type. Only JPEG, PNG and PDF files are allowed."})
		return
	}

	// STEP 3: "Extract" the report text and summarize it
	fileText := extractFileText(file.Filename, mimeType)
	text, err := h.AI.Ask(c.Request.Context(), fmt.Sprintf(gemini.ReportPrompt, fileText), fileText)
	if err != nil {
		log.Println("File processing error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to process file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "responseText": text})
}

type SaveHistoryInput struct { // Struct for save-history input
	UserID   uint     `json:"userId"`   // Owning user id (required)
	Symptoms []string `json:"symptoms"` // Symptom list (required)
	Results  struct { // Results bundle; missing fields default to ""
		Cause        string `json:"cause"`
		Treatment    string `json:"treatment"`
		Medication   string `json:"medication"`
		HomeRemedies string `json:"homeRemedies"`
		FileAnalysis string `json:"fileAnalysis"`
	} `json:"results"`
}

// SaveHistory - Persists one completed analysis as an immutable
// history record. A single insert; no partial state to roll back.
func (h *Handler) SaveHistory(c *gin.Context) {
	var input SaveHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == 0 || len(input.Symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing userId or symptoms"})
		return
	}

	record := models.History{
		UserID:       input.UserID,
		Date:         time.Now(),
		Symptoms:     models.StringList(input.Symptoms),
		Diagnosis:    input.Results.Cause,
		Treatment:    input.Results.Treatment,
		Medications:  input.Results.Medication,
		HomeRemedies: input.Results.HomeRemedies,
		FileAnalysis: input.Results.FileAnalysis,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		log.Println("Save history error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save history"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "History saved successfully"})
}

// extractFileText is the placeholder content extraction for uploads.
func extractFileText(filename, mimeType string) string {
	if mimeType == "application/pdf" {
		return "PDF File processed: " + filename
	}
	return "Image processed: " + filename
}
