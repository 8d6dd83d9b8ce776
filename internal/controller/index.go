package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Welcome to the " + util.GetAppName() + " api",
	})
}

// Health pings the database, 503 when it does not answer.
func (ic IndexController) Health(ctx *gin.Context) {
	sqlDb, err := ic.app.Repository.DB.DB()
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err = sqlDb.PingContext(pingCtx)
	}

	if err != nil {
		ic.app.Logger.Errorf("Health check failed: %v", err)
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Database unavailable", util.GenerateErrorMessages(err, "database"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
	})
}
