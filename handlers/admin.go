package handlers

import (
	"net/http"

	"github.com/adeeb-debug/baitussalambookingapp/services/booking"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdminQueue returns the grouped admin view, filtered and sorted per
// query parameters.
func GetAdminQueue(c *gin.Context) {
	q := booking.AdminQueueQuery{
		Status:        c.Query("status"),
		Location:      c.Query("location"),
		SortKey:       c.Query("sortKey"),
		SortDirection: c.Query("sortDirection"),
	}

	result, err := BookingService.AdminQueue(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type decisionInput struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// DecideGroup applies one decision to every pending record in a group.
func DecideGroup(c *gin.Context) {
	groupID := c.Param("groupID")
	var input decisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := BookingService.DecideGroup(c.Request.Context(), groupID, input.Decision, input.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": groupID, "decision": input.Decision})
}

// DecideBooking applies a decision to a single booking record.
func DecideBooking(c *gin.Context) {
	id := c.Param("id")
	var input decisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := BookingService.DecideBooking(c.Request.Context(), id, input.Decision, input.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "decision": input.Decision})
}

// DeleteBooking removes a single record outright.
func DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := BookingService.RemoveBooking(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NotifyGroup marks a decided group as notified and queues the decision
// email to the requester.
func NotifyGroup(c *gin.Context) {
	groupID := c.Param("groupID")

	if err := BookingService.NotifyRequester(c.Request.Context(), groupID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": groupID, "notified": true})
}

// ListUsers returns every portal account.
func ListUsers(c *gin.Context) {
	users, err := UserService.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
