package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////
// Middleware to log requests
////////////////////////////////////////////////////////////////////////

// requestLogger writes one line per request once the handler chain has finished.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		switch {
		case ctx.Writer.Status() >= 500:
			log.Error("request", fields...)
		case ctx.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
