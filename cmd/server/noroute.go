package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupNoRoute answers unknown paths. The chat frontend is served separately.
func setupNoRoute(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
			"hint":  "POST /chat with {\"message\": \"...\"} or GET /intents",
		})
	})
}
