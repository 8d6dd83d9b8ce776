package controller

import (
	"net/http"
	"time"

	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	*baseController
}

const defaultDashboardDays = 30

func (dc DashboardController) Summary(ctx *gin.Context) {
	summary, err := dc.app.Repository.Dashboard.Summary(ctx, nil, time.Now().UTC())
	if err != nil {
		dc.respondRepositoryError(ctx, "Failed to get dashboard summary", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"summary": summary,
	})
}

// Data returns per day activity, days defaults to 30 and may not exceed 365.
func (dc DashboardController) Data(ctx *gin.Context) {
	type Request struct {
		Days int `json:"days" form:"days" binding:"omitempty,gte=1,lte=365"`
	}
	var params Request

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if params.Days == 0 {
		params.Days = defaultDashboardDays
	}

	daily, err := dc.app.Repository.Dashboard.Daily(ctx, nil, time.Now().UTC(), params.Days)
	if err != nil {
		dc.respondRepositoryError(ctx, "Failed to get dashboard data", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"days":  params.Days,
		"daily": daily,
	})
}
