package handlers

import (
	"errors"
	"net/http"

	"github.com/adeeb-debug/baitussalambookingapp/models"
	"github.com/adeeb-debug/baitussalambookingapp/services/booking"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requesterIdentity pulls the authenticated identity stored by the session
// middleware.
func requesterIdentity(c *gin.Context) (booking.Identity, bool) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return booking.Identity{}, false
	}
	return booking.Identity{Email: email, DisplayName: c.GetString("displayName")}, true
}

// respondServiceError maps the booking service error types onto HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	var nfe *booking.NotFoundError
	var fe *booking.ForbiddenError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.As(err, &nfe):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &fe):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// SubmitBooking creates one booking record per requested location.
func SubmitBooking(c *gin.Context) {
	requester, ok := requesterIdentity(c)
	if !ok {
		return
	}

	var req booking.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	group, err := BookingService.SubmitRequest(c.Request.Context(), requester, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetBookingOptions returns the fixed form choices: bookable spaces and
// local chapters.
func GetBookingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations": models.Locations,
		"jamaats":   models.JamaatOptions,
	})
}

// GetAvailability lists the locations free for the requested window.
func GetAvailability(c *gin.Context) {
	date := c.Query("date")
	fromTime := c.Query("fromTime")
	toTime := c.Query("toTime")

	locations, err := BookingService.Availability(c.Request.Context(), date, fromTime, toTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetMyBookings returns the requester's bookings grouped by submission.
func GetMyBookings(c *gin.Context) {
	requester, ok := requesterIdentity(c)
	if !ok {
		return
	}

	groups, err := BookingService.UserBookings(c.Request.Context(), requester.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CancelBookingGroup deletes an entire submission owned by the requester.
func CancelBookingGroup(c *gin.Context) {
	requester, ok := requesterIdentity(c)
	if !ok {
		return
	}
	groupID := c.Param("groupID")

	if err := BookingService.CancelGroup(c.Request.Context(), groupID, requester.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
