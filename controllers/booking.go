// controllers/booking.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marusalon-backend/models"
	"marusalon-backend/services"
	"marusalon-backend/utils"
)

// RescheduleInput defines the expected JSON structure for a reschedule
type RescheduleInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// CancelInput carries the optional cancellation reason
type CancelInput struct {
	Reason string `json:"reason"`
}

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBooking books a slot for a customer
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input models.BookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}

	result, err := ctrl.bookings.CreateBooking(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{
		"booking":             result.Booking,
		"confirmationMessage": result.Message,
	})
}

// RescheduleBooking moves an existing booking to a new date/time
func (ctrl *BookingController) RescheduleBooking(c *gin.Context) {
	var input RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}

	result, err := ctrl.bookings.RescheduleBooking(c.Param("id"), input.Date, input.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"booking":           result.Booking,
		"rescheduleMessage": result.Message,
	})
}

// CancelBooking cancels an existing booking
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	var input CancelInput
	// A missing body just means no reason was given.
	_ = c.ShouldBindJSON(&input)

	result, err := ctrl.bookings.CancelBooking(c.Param("id"), input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"booking":             result.Booking,
		"cancellationMessage": result.Message,
	})
}

// GetBooking retrieves a single booking by ID
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctrl.bookings.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, booking)
}

// GetCustomerBookings lists all bookings for a customer phone number
func (ctrl *BookingController) GetCustomerBookings(c *gin.Context) {
	bookings, err := ctrl.bookings.GetCustomerBookings(c.Param("phone"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondWithData(c, http.StatusOK, bookings)
}
