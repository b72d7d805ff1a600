package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MedivaDesk/services"
)

// RouteGuard keeps every protected route behind the staff session. With no
// stored token the request is rejected and the shell is pointed back at
// the login page.
func RouteGuard(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Token() == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Sesi tidak ditemukan, silakan login kembali",
				"redirect": "/login",
			})
			return
		}
		c.Next()
	}
}
