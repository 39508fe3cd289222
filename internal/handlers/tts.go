package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/services"
)

type TTSHandler struct {
	log *logger.Logger
	svc services.TTSService
}

func NewTTSHandler(log *logger.Logger, svc services.TTSService) *TTSHandler {
	return &TTSHandler{
		log: log.With("handler", "TTSHandler"),
		svc: svc,
	}
}

type ttsRequest struct {
	SSML      string `json:"ssml"`
	Text      string `json:"text"`
	VoiceName string `json:"voiceName"`
}

// POST /api/tts
func (h *TTSHandler) Synthesize(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SSML == "" && req.Text == "" {
		RespondError(c, http.StatusBadRequest, "ssml or text is required")
		return
	}
	if !h.svc.Enabled() {
		RespondError(c, http.StatusServiceUnavailable, "tts is not configured")
		return
	}

	audio, err := h.svc.Synthesize(c.Request.Context(), services.SynthesisRequest{
		Text:  req.Text,
		SSML:  req.SSML,
		Voice: req.VoiceName,
	})
	if err != nil {
		h.log.Error("TTS synthesis failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "tts failed")
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// GET /api/tts-ping
func (h *TTSHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "ts": time.Now().UnixMilli()})
}
