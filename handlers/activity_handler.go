package handlers

import (
	"errors"
	"net/http"

	"live-backend/config"
	"live-backend/models"
	"live-backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
	cfg             *config.Config
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService, cfg *config.Config) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, cfg: cfg}
}

// RecordMessage records one comment/like/gift event for a room
// POST /api/v1/rooms/:id/messages
// Body: {"user_id": 1, "msg_type": 5, "gift_name": "rocket"}
func (h *ActivityHandler) RecordMessage(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RecordMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	if err := h.activityService.RecordMessage(ctx, roomID, req); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			respondNotFound(c, err.Error())
			return
		}
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Event recorded successfully",
	})
}

// RecordView records one viewing session for a room
// POST /api/v1/rooms/:id/views
// Body: {"user_id": 1, "duration_seconds": 120}
func (h *ActivityHandler) RecordView(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	if err := h.activityService.RecordView(ctx, roomID, req); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			respondNotFound(c, err.Error())
			return
		}
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "View recorded successfully",
	})
}
