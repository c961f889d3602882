// consult_test.go - Tests for the consultation endpoints

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCauseRequiresSymptoms(t *testing.T) {
	router, _, _ := setupTest(t, &stubAI{reply: "CAUSE: viral infection"})

	w := postJSON(router, "/api/gemini/cause", map[string]interface{}{"symptoms": []string{}})
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/api/gemini/cause", map[string]interface{}{})
	assert.Equal(t, 400, w.Code)
}

func TestCauseReturnsCompletionText(t *testing.T) {
	ai := &stubAI{reply: "CAUSE: viral infection\n\nEXPLANATION: fever is typical."}
	router, _, _ := setupTest(t, ai)

	w := postJSON(router, "/api/gemini/cause", map[string]interface{}{"symptoms": []string{"fever"}})
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp["responseText"])
	assert.Equal(t, 1, ai.calls)
}

func TestConsultUpstreamFailure(t *testing.T) {
	router, _, _ := setupTest(t, &stubAI{err: fmt.Errorf("provider down")})

	for _, path := range []string{"/api/gemini/cause", "/api/gemini/treatment", "/api/gemini/home-remedies"} {
		w := postJSON(router, path, map[string]interface{}{"symptoms": []string{"fever"}})
		assert.Equal(t, 500, w.Code, path)

		// The provider detail is never leaked to the client
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NotContains(t, resp["message"], "provider down", path)
	}
}

func TestMedicationSeparatorInserted(t *testing.T) {
	ai := &stubAI{reply: "Medication 1:\n- Name: Paracetamol\nMedication 2:\n- Name: Ibuprofen"}
	router, _, _ := setupTest(t, ai)

	w := postJSON(router, "/api/gemini/medication", map[string]interface{}{"symptoms": []string{"headache"}})
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	text := resp["responseText"].(string)
	assert.Equal(t, 2, strings.Count(text, "<br>Medication"))
	assert.Contains(t, text, "<br>Medication 1:")
	assert.Contains(t, text, "<br>Medication 2:")
}

func TestDoctorRecommendationVocabulary(t *testing.T) {
	// A vocabulary slug comes back normalized
	router, _, _ := setupTest(t, &stubAI{reply: "  Cardiologist \n"})
	w := postJSON(router, "/api/gemini/doctor-recommendation", map[string]interface{}{"symptoms": []string{"chest pain"}})
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "cardiologist", resp["responseText"])

	// Out-of-vocabulary output falls back to the default slug
	router, _, _ = setupTest(t, &stubAI{reply: "You should see a heart doctor."})
	w = postJSON(router, "/api/gemini/doctor-recommendation", map[string]interface{}{"symptoms": []string{"chest pain"}})
	assert.Equal(t, 200, w.Code)

	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "general-physician", resp["responseText"])
}

// uploadRequest builds a multipart request with one "file" part of the
// given MIME type and size.
func uploadRequest(t *testing.T, filename, mimeType string, size int) (*http.Request, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", "/api/gemini/upload", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

func TestUploadGuards(t *testing.T) {
	ai := &stubAI{reply: "KEY FINDINGS: none"}
	router, _, _ := setupTest(t, ai)

	// Oversize file is rejected before the gateway sees anything
	req, err := uploadRequest(t, "report.pdf", "application/pdf", 6*1024*1024)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, ai.calls)

	// Unsupported MIME type is rejected too
	req, err = uploadRequest(t, "notes.txt", "text/plain", 128)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, ai.calls)

	// A valid PDF goes through and gets a summary
	req, err = uploadRequest(t, "report.pdf", "application/pdf", 128)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1, ai.calls)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["responseText"])
}

func TestSaveHistoryValidation(t *testing.T) {
	router, _, _ := setupTest(t, &stubAI{})

	// Missing userId
	w := postJSON(router, "/api/gemini/save-history", map[string]interface{}{
		"symptoms": []string{"fever"},
	})
	assert.Equal(t, 400, w.Code)

	// Missing symptoms
	w = postJSON(router, "/api/gemini/save-history", map[string]interface{}{
		"userId": 1,
	})
	assert.Equal(t, 400, w.Code)
}

func TestHealthIdempotent(t *testing.T) {
	router, _, _ := setupTest(t, &stubAI{})

	for i := 0; i < 3; i++ {
		w := getWithToken(router, "/health", "")
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
}

func TestUnmatchedRoute(t *testing.T) {
	router, _, _ := setupTest(t, &stubAI{})

	w := getWithToken(router, "/api/nope", "")
	assert.Equal(t, 404, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["message"], "/api/nope")
}
