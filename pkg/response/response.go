package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
	"go.uber.org/zap"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func write(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Response{Code: status, Message: msg, Data: data})
}

// Success 200
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, "success", data)
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, "created", data)
}

func BadRequest(c *gin.Context, msg string) {
	write(c, http.StatusBadRequest, msg, nil)
}

func Unauthorized(c *gin.Context, msg string) {
	c.Abort()
	write(c, http.StatusUnauthorized, msg, nil)
}

func NotFound(c *gin.Context, msg string) {
	write(c, http.StatusNotFound, msg, nil)
}

func Conflict(c *gin.Context, msg string) {
	write(c, http.StatusConflict, msg, nil)
}

func TooManyRequests(c *gin.Context, msg string) {
	c.Abort()
	write(c, http.StatusTooManyRequests, msg, nil)
}

// ServiceUnavailable tells the client the action can be repeated.
func ServiceUnavailable(c *gin.Context, msg string) {
	write(c, http.StatusServiceUnavailable, msg, nil)
}

// InternalError logs err and hides it from the client.
func InternalError(c *gin.Context, err error) {
	logger.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	write(c, http.StatusInternalServerError, "internal server error", nil)
}
