package middleware

import (
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or assigns a new one.
func (m Middleware) RequestID(ctx *gin.Context) {
	id := ctx.GetHeader(RequestIDHeader)
	if id == "" || len(id) > 64 {
		generated, err := util.NewRequestID()
		if err != nil {
			m.app.Logger.Errorf("Failed to generate request id: %v", err)
		}
		id = generated
	}

	ctx.Set("requestId", id)
	ctx.Header(RequestIDHeader, id)
	ctx.Next()
}
