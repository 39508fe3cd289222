package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/joyjoykids/feedback-backend/internal/catalog"
	"github.com/joyjoykids/feedback-backend/internal/feedback"
	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/services"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newFeedbackRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testLogger(t)
	loader := catalog.NewLoader("testdata", log)
	orch := feedback.NewOrchestrator(log, nil)
	svc := services.NewFeedbackService(log, loader, orch, "05", "1")
	h := NewFeedbackHandler(log, svc)

	r := gin.New()
	r.POST("/api/auto-feedback", h.AutoFeedback)
	r.POST("/api/feedback", h.Echo)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAutoFeedbackFallbackResponse(t *testing.T) {
	r := newFeedbackRouter(t)
	w := postJSON(t, r, "/api/auto-feedback",
		`{"childName":"김민수","ageMonth":34,"items":[{"id":1,"value":3}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success  bool   `json:"success"`
		AutoText string `json:"autoText"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true: %s", w.Body.String())
	}
	if !strings.Contains(resp.AutoText, "34개월 김민수") {
		t.Fatalf("autoText must contain the header: %q", resp.AutoText)
	}
	if !strings.Contains(resp.AutoText, "스스로 즐겁게 탐색했어요.") {
		t.Fatalf("autoText must contain the level-3 label: %q", resp.AutoText)
	}
}

func TestAutoFeedbackLegacyItemsObject(t *testing.T) {
	r := newFeedbackRouter(t)
	w := postJSON(t, r, "/api/auto-feedback",
		`{"childName":"김민수","ageMonth":"34","items":{"item1":"3","item2":""}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "34개월") {
		t.Fatalf("string ageMonth must still parse: %s", body)
	}
	// item2's blank selection is excluded, so only one bullet shows up.
	if strings.Count(body, "- ") != 1 {
		t.Fatalf("expected exactly one bullet: %s", body)
	}
}

func TestAutoFeedbackMalformedBody(t *testing.T) {
	r := newFeedbackRouter(t)
	w := postJSON(t, r, "/api/auto-feedback", `{"childName":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("expected error envelope: %s", w.Body.String())
	}
}

func TestAutoFeedbackUnknownCatalogStillSucceeds(t *testing.T) {
	r := newFeedbackRouter(t)
	w := postJSON(t, r, "/api/auto-feedback",
		`{"childName":"김민수","items":[{"id":1,"value":3}],"month":"12","lesson":"9"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("missing catalog degrades to success, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "김민수") {
		t.Fatalf("header-only response expected: %s", w.Body.String())
	}
}

func TestFeedbackEchoRoundTrips(t *testing.T) {
	r := newFeedbackRouter(t)
	w := postJSON(t, r, "/api/feedback", `{"childName":"김민수","items":{"item1":"3"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success  bool           `json:"success"`
		Received map[string]any `json:"received"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true")
	}
	if resp.Received["childName"] != "김민수" {
		t.Fatalf("payload must echo back, got %v", resp.Received)
	}
}
