package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joyjoykids/feedback-backend/internal/domain"
	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/services"
)

type FeedbackHandler struct {
	log *logger.Logger
	svc services.FeedbackService
}

func NewFeedbackHandler(log *logger.Logger, svc services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		log: log.With("handler", "FeedbackHandler"),
		svc: svc,
	}
}

// autoFeedbackRequest keeps loosely-typed fields raw; domain parse
// helpers own the coercion (frontends post numbers and strings
// interchangeably, and items in both list and object form).
type autoFeedbackRequest struct {
	ChildName  string          `json:"childName"`
	AgeMonth   json.RawMessage `json:"ageMonth"`
	Items      json.RawMessage `json:"items"`
	Month      json.RawMessage `json:"month"`
	Lesson     json.RawMessage `json:"lesson"`
	ParentPref json.RawMessage `json:"parentPref"`
	Answers    json.RawMessage `json:"answers"`
}

// POST /api/auto-feedback
func (h *FeedbackHandler) AutoFeedback(c *gin.Context) {
	var req autoFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs := domain.ParseStringMap(req.ParentPref)
	if prefs == nil {
		prefs = domain.ParseStringMap(req.Answers)
	}
	age, _ := domain.AsInt(req.AgeMonth)
	in := domain.ObservationInput{
		ChildName: req.ChildName,
		AgeMonths: age,
		Items:     domain.ParseItems(req.Items),
		Prefs:     prefs,
	}

	res := h.svc.Compose(c.Request.Context(), in, domain.AsString(req.Month), domain.AsString(req.Lesson))

	payload := gin.H{"autoText": res.AutoText}
	if len(res.SummaryByDomain) > 0 {
		payload["summary_by_domain"] = res.SummaryByDomain
	}
	RespondOK(c, payload)
}

// POST /api/feedback
// Receives a feedback payload and echoes it back. Persistence and the
// downstream notification hookup are placeholders.
func (h *FeedbackHandler) Echo(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.log.Info("Feedback payload received", "keys", len(body))
	RespondOK(c, gin.H{"received": body})
}
