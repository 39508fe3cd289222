package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envelope: {success, ...} on 200, {success:false, message} on
// errors. Error statuses are reserved for malformed input; degraded
// generation still answers 200 with best-effort text.

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func RespondOK(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}
