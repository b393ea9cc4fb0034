package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (s *serverHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userId := c.GetHeader("X-User-Id")
	if userId != "" {
		data = append(data, zap.String("user_id", userId))
	}
	s.logger.Log(logLevel, errDescription, data...)
}
