package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joyjoykids/feedback-backend/internal/logger"
)

// Recovery renders panics as the standard error envelope. Detail is
// included only when the debug flag is on (deploy-wide env or explicit
// ?debug=1), never by default.
func Recovery(log *logger.Logger, debug bool) gin.HandlerFunc {
	rlog := log.With("middleware", "Recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rlog.Error("Panic recovered",
					"path", c.Request.URL.Path,
					"error", fmt.Sprint(r),
				)
				msg := "internal server error"
				if debug || c.Query("debug") == "1" {
					msg = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": msg,
				})
			}
		}()
		c.Next()
	}
}
