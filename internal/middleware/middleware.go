package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORS allows any origin to call the API. Preflight handling is left to the
// route handlers, which know which methods they accept.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}
