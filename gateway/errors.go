package gateway

import (
	"errors"
	"net/http"

	"github.com/example/artshop/pkg/actors"
	"github.com/example/artshop/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case service.IsNotFound(err):
		return http.StatusNotFound
	case service.IsValidation(err), service.IsInvalidState(err):
		return http.StatusBadRequest
	case service.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.Is(err, actors.ErrAuditDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (g *Gateway) abortWithError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		g.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDHeader)),
			zap.Error(err))
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(code, errorResponse{Error: msg})
}
