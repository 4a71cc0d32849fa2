package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marusalon-backend/services"
	"marusalon-backend/utils"
)

type AvailabilityController struct {
	engine *services.AvailabilityEngine
}

func NewAvailabilityController(engine *services.AvailabilityEngine) *AvailabilityController {
	return &AvailabilityController{engine: engine}
}

// GetAvailability lists the free slots for ?date&serviceId&stylistId
func (ctrl *AvailabilityController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	stylistID := c.Query("stylistId")

	if date == "" || serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, CodeInvalidInput, "date and serviceId are required")
		return
	}

	slots, err := ctrl.engine.GetAvailableSlots(date, serviceID, stylistID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, slots)
}
