package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "joyjoy feedback backend running")
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
