package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marusalon-backend/services"
	"marusalon-backend/utils"
)

type AnalyticsController struct {
	tracker *services.AnalyticsTracker
}

func NewAnalyticsController(tracker *services.AnalyticsTracker) *AnalyticsController {
	return &AnalyticsController{tracker: tracker}
}

// GetAnalytics serves the aggregated dashboard for a day/week/month period
func (ctrl *AnalyticsController) GetAnalytics(c *gin.Context) {
	dashboard, err := ctrl.tracker.Dashboard(c.Param("period"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, dashboard)
}
