package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Metrics(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}

	m.app.Metrics.ObserveRequest(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status()), time.Since(start).Seconds())
}
