package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marusalon-backend/services"
	"marusalon-backend/utils"
)

// Machine-readable error codes for the API envelope. SLOT_BUSY is the
// one code clients may retry after a short delay.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodePastDate         = "PAST_DATE"
	CodeSlotUnavailable  = "SLOT_UNAVAILABLE"
	CodeSlotBusy         = "SLOT_BUSY"
	CodeAlreadyCancelled = "ALREADY_CANCELLED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// respondServiceError maps the booking error taxonomy onto HTTP status
// codes and envelope codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		utils.RespondWithError(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrStylistNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.RespondWithError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, services.ErrPastDate):
		utils.RespondWithError(c, http.StatusBadRequest, CodePastDate, err.Error())
	case errors.Is(err, services.ErrSlotUnavailable):
		utils.RespondWithError(c, http.StatusConflict, CodeSlotUnavailable, err.Error())
	case errors.Is(err, services.ErrSlotBusy):
		utils.RespondWithError(c, http.StatusConflict, CodeSlotBusy, err.Error())
	case errors.Is(err, services.ErrAlreadyCancelled):
		utils.RespondWithError(c, http.StatusConflict, CodeAlreadyCancelled, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}
}
