package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows read-only access from the configured origins. "*"
// or an empty list allows every origin.
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Language",
			"Cache-Control", "X-Requested-With",
		},
		ExposeHeaders: []string{
			"Content-Type", "Content-Language", "Cache-Control", "X-Snapshot-ID",
		},
	}

	origins := splitOrigins(allowedOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
