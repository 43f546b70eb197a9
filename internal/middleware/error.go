package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"finadvisor/internal/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// failure with the request context and renders the shared error screen.
// The panic value and stack go to the log only; internals never leak into
// the page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Errorw("panic recovered",
					"error", fmt.Sprintf("%v", r),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"Title":   "Ошибка",
					"Message": "Что-то пошло не так. Попробуйте позже.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFound renders the shared error screen for unknown routes.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Страница не найдена",
		"Message": "Такой страницы нет. Вернитесь на главную.",
	})
}
