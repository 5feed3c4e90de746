package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/internal/domain/dto"
	"github.com/renanmoretto/dias-uteis/internal/logger"
)

// Recovery catches panics raised while handling a request, logs the stack
// trace and answers with a standardized 500 JSON body instead of tearing
// down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					dto.NewErrorResponse("internal server error", nil),
				)
			}
		}()
		c.Next()
	}
}
