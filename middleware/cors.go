package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/vanshikachilkoti/Wordlookup-Dictionary/pkg/appenv"

	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin headers. Outside production any origin
// is allowed for convenience. In production the incoming Origin is
// reflected only when listed in the comma-separated ALLOWED_ORIGINS
// env var, with Allow-Credentials set so the session cookie works from
// a separately hosted frontend.
func CORS() gin.HandlerFunc {
	isProd := appenv.IsProduction() && gin.Mode() == gin.ReleaseMode

	allowed := make(map[string]struct{})
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin := strings.TrimSpace(o); origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	const methods = "GET, POST, OPTIONS"
	const headers = "Origin, Content-Type, Authorization"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		c.Header("Vary", "Origin")

		if !isProd {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
		} else if origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", methods)
				c.Header("Access-Control-Allow-Headers", headers)
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method == http.MethodOptions {
			// Preflight. If the origin was not allowed the headers are
			// absent and the browser blocks the request.
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
