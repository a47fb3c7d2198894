package middleware

import (
	"net/http"
	"strconv"

	"slotbook/services/admission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdmissionGateMiddleware enforces the per-client attempt limit on the
// public booking surface. Gate failures fail open: the gate is abuse
// mitigation, and the booking conflict check remains authoritative.
func AdmissionGateMiddleware(gate admission.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		key := getClientIP(c)

		ok, err := gate.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("admission gate unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			if retry, err := gate.TimeUntilReset(c.Request.Context(), key); err == nil && retry > 0 {
				c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			}
			logger.Warn("admission gate denied request", zap.String("key", key))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}
		c.Next()
	}
}
