package middleware

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// ErrorHandler перехватывает panic и ошибки, добавленные через c.Error, если
// обработчик сам не записал ответ. Внутренние детали клиенту не отдаются.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().WithFields(logrus.Fields{
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
					"stack":  string(debug.Stack()),
				}).Errorf("panic: %v", r)
				if !c.Writer.Written() {
					response.Error(c, apperror.New(apperror.ErrCodeInternal, "внутренняя ошибка сервера"))
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		switch apperror.CodeOf(err) {
		case "", apperror.ErrCodeDatabaseError, apperror.ErrCodeInternal:
			logger.L().WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).WithError(err).Error("request error")
		}
		if !c.Writer.Written() {
			response.Error(c, err)
		}
	}
}

// RequestLogger пишет строку на каждый запрос. Ответы 5xx - уровнем error.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"status":   c.Writer.Status(),
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"duration": fmt.Sprintf("%.3fms", float64(time.Since(start).Microseconds())/1000),
			"ip":       c.ClientIP(),
		}
		if actor, ok := CurrentActor(c); ok {
			fields["user_id"] = actor.UserID
			fields["role"] = actor.Role
		}

		entry := logger.L().WithFields(fields)
		if c.Writer.Status() >= 500 {
			entry.Error("http request")
			return
		}
		entry.Info("http request")
	}
}
