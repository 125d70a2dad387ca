package middleware

import (
	"fmt"
	"net/http"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into the 500 envelope and logs it with the stack.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestID", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.TrackedErrorResponse{
					Response:  serializer.InternalErr(fmt.Errorf("panic: %v", r)),
					RequestID: c.GetString(RequestIDKey),
				})
			}
		}()
		c.Next()
	}
}
