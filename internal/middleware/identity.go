package middleware

import (
	"github.com/gin-gonic/gin"

	"finadvisor/internal/backend"
)

// Identity extracts the Telegram initData payload from the incoming
// request and attaches it to the request context for the backend client.
// The payload is forwarded opaquely; verification is the backend's job.
// Requests without initData fall through to the client's test-deployment
// handling.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(backend.HeaderInitData)
		if initData == "" {
			initData = c.Query("init_data")
		}

		ctx := backend.WithIdentity(c.Request.Context(), backend.Identity{InitData: initData})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
